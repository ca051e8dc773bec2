package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

func (m *Model) updateTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		wasRunning := m.engine.Running()
		m.engine.ToggleRun()
		if !wasRunning && m.engine.Running() {
			m.tickSeq++
			return m, tickCmd(m.tickSeq)
		}
		return m, nil
	case "r":
		m.engine.Reset()
		return m, nil
	case "e":
		m.engine.Extend()
		return m, nil
	case "p":
		if len(m.profileList) > 1 {
			m.profileIdx = (m.profileIdx + 1) % len(m.profileList)
			m.engine.SelectProfile(m.profileList[m.profileIdx])
		}
		return m, nil
	case "n":
		m.creatorOpen = true
		m.creatorInputs = newCreatorInputs()
		m.creatorFocus = 0
		m.creatorInputs[0].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) viewTimer(width, height int) string {
	var b strings.Builder

	clockStyle := studyClockStyle
	if m.engine.Phase() == model.PhaseBreak {
		clockStyle = breakClockStyle
	}
	state := "in pausa"
	if m.engine.Running() {
		state = "in corso"
	}

	b.WriteString(phaseStyle.Render(fmt.Sprintf("Fase: %s (%s)", m.engine.Phase(), state)))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(formatClock(m.engine.Remaining())))
	b.WriteString("\n\n")
	b.WriteString(m.progressBar.ViewAs(m.engine.Progress()))
	b.WriteString("\n\n")
	b.WriteString(m.viewProfileCard())

	if m.creatorOpen {
		b.WriteString("\n\n")
		b.WriteString(m.viewCreator())
	}
	return b.String()
}

func (m *Model) viewProfileCard() string {
	p := m.engine.Profile()
	lines := []string{
		cardTitleStyle.Render("Profilo attivo"),
		cardValueStyle.Render(p.Name),
		fmt.Sprintf("Studio %s • Pausa %s",
			formatClock(p.StudyTime), formatClock(p.BreakTime)),
	}
	if len(m.profileList) > 1 {
		lines = append(lines, noticeStyle.Render(
			fmt.Sprintf("profilo %d di %d", m.profileIdx+1, len(m.profileList))))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func newCreatorInputs() []textinput.Model {
	labels := []struct {
		placeholder string
		limit       int
	}{
		{"nome del profilo", 40},
		{"minuti di studio", 4},
		{"minuti di pausa", 4},
	}
	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = l.limit
		inputs[i] = ti
	}
	return inputs
}

func (m *Model) updateCreator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creatorOpen = false
		return m, nil
	case "tab", "down":
		m.moveCreatorFocus(1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.moveCreatorFocus(-1)
		return m, textinput.Blink
	case "enter":
		m.submitCreator()
		return m, nil
	}
	var cmd tea.Cmd
	m.creatorInputs[m.creatorFocus], cmd = m.creatorInputs[m.creatorFocus].Update(msg)
	return m, cmd
}

func (m *Model) moveCreatorFocus(delta int) {
	m.creatorInputs[m.creatorFocus].Blur()
	n := len(m.creatorInputs)
	m.creatorFocus = (m.creatorFocus + delta + n) % n
	m.creatorInputs[m.creatorFocus].Focus()
}

// submitCreator validates the form and adds the profile. Invalid input is
// rejected silently: the form stays open and nothing is saved.
func (m *Model) submitCreator() {
	name := strings.TrimSpace(m.creatorInputs[0].Value())
	studyMinutes, err1 := strconv.Atoi(strings.TrimSpace(m.creatorInputs[1].Value()))
	breakMinutes, err2 := strconv.Atoi(strings.TrimSpace(m.creatorInputs[2].Value()))
	if name == "" || err1 != nil || err2 != nil || studyMinutes <= 0 || breakMinutes <= 0 {
		return
	}

	p := model.TimerProfile{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:      name,
		StudyTime: studyMinutes * 60,
		BreakTime: breakMinutes * 60,
	}
	m.profileList = m.profiles.Add(m.ctx, p)
	m.profileIdx = len(m.profileList) - 1
	m.engine.SelectProfile(p)
	m.creatorOpen = false
}

func (m *Model) viewCreator() string {
	rows := []string{cardTitleStyle.Render("Nuovo profilo")}
	labels := []string{"Nome", "Studio (min)", "Pausa (min)"}
	for i, label := range labels {
		prefix := "  "
		if i == m.creatorFocus {
			prefix = selectedStyle.Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%-13s %s", prefix, label, m.creatorInputs[i].View()))
	}
	return modalStyle.Render(strings.Join(rows, "\n"))
}
