package store

import (
	"context"
	"testing"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

func TestProfilesSeedDefault(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfiles(openTestStore(t))
	got := profiles.Load(ctx)
	if len(got) != 1 {
		t.Fatalf("expected only the default profile, got %d", len(got))
	}
	def := model.DefaultProfile()
	if got[0] != def {
		t.Fatalf("unexpected default profile: %+v", got[0])
	}
	if def.StudyTime != 2700 || def.BreakTime != 900 {
		t.Fatalf("default profile must be 45/15 minutes, got %d/%d", def.StudyTime, def.BreakTime)
	}
}

func TestProfilesAddKeepsOrder(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfiles(openTestStore(t))
	profiles.Add(ctx, model.TimerProfile{ID: "a", Name: "A", StudyTime: 60, BreakTime: 30})
	got := profiles.Add(ctx, model.TimerProfile{ID: "b", Name: "B", StudyTime: 90, BreakTime: 30})
	if len(got) != 3 {
		t.Fatalf("expected default + 2 profiles, got %d", len(got))
	}
	if got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("profiles out of order: %+v", got)
	}
	reloaded := profiles.Load(ctx)
	if len(reloaded) != 3 {
		t.Fatalf("expected persisted profiles, got %d", len(reloaded))
	}
}

func TestSessionsAppendAndReplace(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessions(openTestStore(t))
	if got := sessions.Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}

	s := model.StudySession{ID: "one", Date: "2025-03-01T10:00:00Z", Duration: 45}
	sessions.Append(ctx, s)
	got := sessions.Load(ctx)
	if len(got) != 1 || got[0].ID != "one" {
		t.Fatalf("unexpected sessions: %+v", got)
	}

	sessions.Replace(ctx, []model.StudySession{{ID: "two", Duration: 25}})
	got = sessions.Load(ctx)
	if len(got) != 1 || got[0].ID != "two" {
		t.Fatalf("replace must overwrite, got %+v", got)
	}
}

func TestProfilesLoadSkipsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfiles(openTestStore(t))

	profiles.Replace(ctx, []model.TimerProfile{
		{ID: "ok", Name: "OK", StudyTime: 1500, BreakTime: 300},
		{ID: "zero", Name: "Zero", StudyTime: 0, BreakTime: 0},
		{ID: "negative", Name: "Negativo", StudyTime: -60, BreakTime: 300},
	})
	got := profiles.Load(ctx)
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("expected only the valid profile, got %+v", got)
	}

	profiles.Replace(ctx, []model.TimerProfile{
		{ID: "zero", Name: "Zero", StudyTime: 0, BreakTime: 0},
	})
	got = profiles.Load(ctx)
	if len(got) != 1 || got[0].ID != "default" {
		t.Fatalf("expected fallback to the default profile, got %+v", got)
	}
}

func TestProfilesReplace(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfiles(openTestStore(t))
	imported := []model.TimerProfile{
		{ID: "x", Name: "X", StudyTime: 1500, BreakTime: 300},
	}
	profiles.Replace(ctx, imported)
	got := profiles.Load(ctx)
	if len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("replace must overwrite, got %+v", got)
	}
}
