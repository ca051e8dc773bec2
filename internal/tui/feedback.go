package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/stats"
)

const sessionDateLayout = "2006-01-02T15:04:05.000Z"

var ratingLabels = [4]string{"Stress", "Stanchezza", "Felicità", "Produttività"}

// newSessionID builds a unique session id from the completion instant plus a
// short random suffix, so two sessions saved in the same millisecond never
// collide.
func newSessionID(now time.Time) string {
	return now.UTC().Format(sessionDateLayout) + "-" + uuid.NewString()[:8]
}

// openFeedback shows the post-session modal. The engine is already paused at
// the phase boundary, so the break does not run down while the user types.
func (m *Model) openFeedback(durationSeconds int) {
	m.feedbackOpen = true
	m.feedbackDuration = durationSeconds
	for i := range m.ratings {
		m.ratings[i] = 3
	}
	m.ratingFocus = 0
	m.notesInput.Reset()
	m.notesInput.Blur()
}

func (m *Model) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onNotes := m.ratingFocus == len(m.ratings)
	switch msg.String() {
	case "esc":
		// Discard: the session is only recorded on save.
		m.feedbackOpen = false
		return m, nil
	case "ctrl+s":
		m.saveFeedback()
		return m, nil
	case "enter":
		// On the notes field enter inserts a newline instead of saving.
		if !onNotes {
			m.saveFeedback()
			return m, nil
		}
	case "tab":
		m.moveFeedbackFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFeedbackFocus(-1)
		return m, nil
	case "down":
		if !onNotes {
			m.moveFeedbackFocus(1)
			return m, nil
		}
	case "up":
		if !onNotes {
			m.moveFeedbackFocus(-1)
			return m, nil
		}
	}

	if !onNotes {
		switch msg.String() {
		case "1", "2", "3", "4", "5":
			m.ratings[m.ratingFocus] = int(msg.String()[0] - '0')
			return m, nil
		case "left", "h":
			if m.ratings[m.ratingFocus] > stats.RatingMin {
				m.ratings[m.ratingFocus]--
			}
			return m, nil
		case "right", "l":
			if m.ratings[m.ratingFocus] < stats.RatingMax {
				m.ratings[m.ratingFocus]++
			}
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

func (m *Model) moveFeedbackFocus(delta int) {
	fields := len(m.ratings) + 1
	m.ratingFocus = (m.ratingFocus + delta + fields) % fields
	if m.ratingFocus == len(m.ratings) {
		m.notesInput.Focus()
	} else {
		m.notesInput.Blur()
	}
}

func (m *Model) saveFeedback() {
	now := time.Now()
	session := model.StudySession{
		ID:       newSessionID(now),
		Date:     now.UTC().Format(sessionDateLayout),
		Duration: float64(m.feedbackDuration) / 60.0,
		Notes:    strings.TrimSpace(m.notesInput.Value()),
		PerformanceMetrics: model.PerformanceMetrics{
			Stress:       m.ratings[0],
			Tiredness:    m.ratings[1],
			Happiness:    m.ratings[2],
			Productivity: m.ratings[3],
		},
	}
	m.sessions.Append(m.ctx, session)
	m.feedbackOpen = false
}

func (m *Model) viewFeedback() string {
	var b strings.Builder
	b.WriteString(cardValueStyle.Render("Sessione completata!"))
	b.WriteString("\n")
	b.WriteString(noticeStyle.Render(fmt.Sprintf("Hai studiato per %.1f minuti. Com'è andata?", float64(m.feedbackDuration)/60.0)))
	b.WriteString("\n\n")

	for i, label := range ratingLabels {
		prefix := "  "
		if i == m.ratingFocus {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-13s %s\n", prefix, label, renderRating(m.ratings[i])))
	}

	prefix := "  "
	if m.ratingFocus == len(m.ratings) {
		prefix = selectedStyle.Render("> ")
	}
	b.WriteString(fmt.Sprintf("\n%sNote:\n%s", prefix, m.notesInput.View()))
	return modalStyle.Render(b.String())
}

func renderRating(value int) string {
	var b strings.Builder
	for i := stats.RatingMin; i <= stats.RatingMax; i++ {
		mark := "○"
		style := ratingOffStyle
		if i <= value {
			mark = "●"
			style = ratingOnStyle
		}
		b.WriteString(style.Render(mark))
		if i < stats.RatingMax {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
