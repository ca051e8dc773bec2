package coach

import (
	"context"
	"strings"
	"testing"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

func TestSummaryWithoutSessions(t *testing.T) {
	c := New("key", "", "")
	got := c.Summary(context.Background(), nil)
	if got != noSessionsSummary {
		t.Fatalf("expected no-data notice, got %q", got)
	}
}

func TestUnconfiguredClientNeverErrors(t *testing.T) {
	c := New("", "", "")
	if c.Configured() {
		t.Fatalf("client without key must not report configured")
	}
	if got := c.ChatSend(context.Background(), "ciao"); got != noKeyNotice {
		t.Fatalf("expected missing-key notice, got %q", got)
	}
	sessions := []model.StudySession{{ID: "s", Duration: 45}}
	if got := c.Summary(context.Background(), sessions); got != noKeyNotice {
		t.Fatalf("expected missing-key notice, got %q", got)
	}
}

func TestDefaultModels(t *testing.T) {
	c := New("key", "", "")
	if c.chatModel != DefaultChatModel || c.summaryModel != DefaultSummaryModel {
		t.Fatalf("unexpected models: %s %s", c.chatModel, c.summaryModel)
	}
	c = New("key", "m1", "m2")
	if c.chatModel != "m1" || c.summaryModel != "m2" {
		t.Fatalf("configured models not applied: %s %s", c.chatModel, c.summaryModel)
	}
}

func TestResetDropsCachedState(t *testing.T) {
	c := New("key", "", "")
	c.Reset()
	if c.ai != nil || c.chat != nil {
		t.Fatalf("reset must drop cached handles")
	}
}

func TestSummaryPromptIsItalianAnalystPrompt(t *testing.T) {
	if !strings.Contains(summaryPrompt, "analista di dati") {
		t.Fatalf("summary prompt changed unexpectedly")
	}
}
