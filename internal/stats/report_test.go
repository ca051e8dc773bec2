package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestBuildReportAverages(t *testing.T) {
	r := BuildReport(sampleSessions(), 1)
	if r.Count != 3 {
		t.Fatalf("expected 3 sessions, got %d", r.Count)
	}
	if r.TotalMinutes != 135 {
		t.Fatalf("expected 135 total minutes, got %f", r.TotalMinutes)
	}
	if math.Abs(r.AvgProductivity-4) > 1e-9 {
		t.Fatalf("expected avg productivity 4, got %f", r.AvgProductivity)
	}
	if math.Abs(r.AvgStress-7.0/3) > 1e-9 {
		t.Fatalf("expected avg stress 7/3, got %f", r.AvgStress)
	}
	if len(r.Series) != 4 {
		t.Fatalf("expected 4 series, got %d", len(r.Series))
	}
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil, 5)
	if r.Count != 0 || r.TotalMinutes != 0 || r.AvgProductivity != 0 {
		t.Fatalf("unexpected empty report: %+v", r)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, BuildReport(sampleSessions(), 1)); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessioni: 3", "Minuti di studio: 135.0", "Produttività media: 4.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSessionTableLimitsRows(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSessionTable(&buf, sampleSessions(), 2); err != nil {
		t.Fatalf("render table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header + 2 rows + trailing blank line collapsed by trim.
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Durata (min)") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestRenderSessionTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSessionTable(&buf, nil, 0); err != nil {
		t.Fatalf("render table: %v", err)
	}
	if !strings.Contains(buf.String(), "Nessuna sessione") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestTruncateNotes(t *testing.T) {
	if got := truncateNotes("breve", 10); got != "breve" {
		t.Fatalf("short notes must pass through, got %q", got)
	}
	got := truncateNotes("una nota decisamente troppo lunga per la tabella", 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
