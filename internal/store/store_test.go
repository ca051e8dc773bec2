package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "focusflow.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestGetReturnsDefaultOnMissingKey(t *testing.T) {
	st := openTestStore(t)
	got := Get(context.Background(), st, "nope", 42)
	if got != 42 {
		t.Fatalf("expected default 42, got %d", got)
	}
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	Set(ctx, st, "counter", map[string]int{"a": 1, "b": 2})
	got := Get(ctx, st, "counter", map[string]int{})
	if got["a"] != 1 || got["b"] != 2 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestSetOverwritesPreviousValue(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	Set(ctx, st, "k", "first")
	Set(ctx, st, "k", "second")
	if got := Get(ctx, st, "k", ""); got != "second" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestGetReturnsDefaultOnCorruptDocument(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	if err := st.SetRaw(ctx, "bad", []byte("{not json")); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	got := Get(ctx, st, "bad", []string{"fallback"})
	if len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("expected fallback default, got %v", got)
	}
}
