package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/coach"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/limiter"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "focusflow.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	})
	return st
}

func newTestModel(t *testing.T, st *store.Store) *Model {
	t.Helper()
	ctx := context.Background()
	return New(ctx, Options{
		Sessions:  store.NewSessions(st),
		Profiles:  store.NewProfiles(st),
		Limiter:   limiter.New(ctx, st, 0),
		Coach:     coach.New("", "", ""),
		ExportDir: t.TempDir(),
	})
}

func TestNewFallsBackToDefaultProfile(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	store.NewProfiles(st).Replace(ctx, []model.TimerProfile{
		{ID: "rotto", Name: "Rotto", StudyTime: 0, BreakTime: 0},
	})

	m := newTestModel(t, st)
	got := m.engine.Profile()
	if got.ID != "default" || got.StudyTime <= 0 || got.BreakTime <= 0 {
		t.Fatalf("expected the default profile, got %+v", got)
	}
}

func TestApplyImportSanitizesProfiles(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	m.pendingImport = model.BackupData{
		Profiles: []model.TimerProfile{{ID: "rotto", Name: "Rotto", StudyTime: 0, BreakTime: -300}},
	}
	m.importStage = importConfirm

	m.applyImport()

	if m.importStage != importIdle {
		t.Fatalf("expected import to finish, stage %d", m.importStage)
	}
	got := m.engine.Profile()
	if got.ID != "default" || got.StudyTime <= 0 || got.BreakTime <= 0 {
		t.Fatalf("expected the default profile after import, got %+v", got)
	}
	if len(m.profileList) != 1 || m.profileList[0].ID != "default" {
		t.Fatalf("unexpected profile list: %+v", m.profileList)
	}
}

func TestSwitchingToChatResetsQuota(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	store.Set(ctx, st, store.KeyLimitState, model.RateLimitState{
		Count:         40,
		LastResetDate: "2020-01-01",
	})

	m := newTestModel(t, st)
	m.switchView(viewChat)

	if got := m.limiter.Remaining(); got != limiter.DailyLimit {
		t.Fatalf("expected a fresh quota after the day rolled over, got %d", got)
	}
}

func TestFeedbackNotesAllowNewlines(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	m.openFeedback(2700)
	for range m.ratings {
		m.moveFeedbackFocus(1)
	}

	m.updateFeedback(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("prima riga")})
	m.updateFeedback(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.feedbackOpen {
		t.Fatal("enter on the notes field must not save the session")
	}
	m.updateFeedback(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("seconda riga")})

	m.updateFeedback(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.feedbackOpen {
		t.Fatal("ctrl+s must save the session")
	}
	sessions := m.sessions.Load(context.Background())
	if len(sessions) != 1 {
		t.Fatalf("expected one recorded session, got %d", len(sessions))
	}
	if !strings.Contains(sessions[0].Notes, "prima riga\nseconda riga") {
		t.Fatalf("expected multi-line notes, got %q", sessions[0].Notes)
	}
}

func TestFeedbackEnterSavesFromRatingRow(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	m.openFeedback(1500)

	m.updateFeedback(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	m.updateFeedback(tea.KeyMsg{Type: tea.KeyEnter})
	if m.feedbackOpen {
		t.Fatal("enter on a rating row must save the session")
	}
	sessions := m.sessions.Load(context.Background())
	if len(sessions) != 1 || sessions[0].Stress != 4 {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
}
