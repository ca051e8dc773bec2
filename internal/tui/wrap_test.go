package tui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksOnWords(t *testing.T) {
	got := wrapText("studia con calma e costanza", 12)
	want := []string{"studia con", "calma e", "costanza"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %v", got)
	}
}

func TestWrapTextKeepsShortLines(t *testing.T) {
	got := wrapText("ciao", 20)
	if !reflect.DeepEqual(got, []string{"ciao"}) {
		t.Fatalf("unexpected wrap: %v", got)
	}
}

func TestWrapTextRespectsNewlines(t *testing.T) {
	got := wrapText("prima\nseconda", 20)
	if !reflect.DeepEqual(got, []string{"prima", "seconda"}) {
		t.Fatalf("unexpected wrap: %v", got)
	}
}

func TestWrapTextBreaksOversizedWords(t *testing.T) {
	got := wrapText("abcdefghij", 4)
	if !reflect.DeepEqual(got, []string{"abcd", "efgh", "ij"}) {
		t.Fatalf("unexpected wrap: %v", got)
	}
}

func TestWrapTextNeverExceedsWidth(t *testing.T) {
	for _, line := range wrapText("qualche parola più lunga di altre, ripetuta più volte", 9) {
		if w := runewidth.StringWidth(line); w > 9 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if got := wrapText("", 10); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("unexpected wrap of empty text: %v", got)
	}
}
