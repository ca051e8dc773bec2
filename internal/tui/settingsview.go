package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/backup"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

func (m *Model) updateSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x":
		m.runExport()
		return m, nil
	case "i":
		m.importStage = importPath
		m.importInput.Reset()
		m.importInput.Focus()
		m.settingsNote = ""
		return m, textinput.Blink
	case "k":
		m.coach.Reset()
		m.settingsNote = "Sessione del coach reimpostata."
		return m, nil
	}
	return m, nil
}

func (m *Model) runExport() {
	data := model.BackupData{
		Sessions: m.sessions.Load(m.ctx),
		Profiles: m.profiles.Load(m.ctx),
	}
	path, err := backup.WriteFile(m.exportDir, data, time.Now())
	if err != nil {
		m.setNote(fmt.Sprintf("Esportazione fallita: %v", err), true)
		return
	}
	m.setNote(fmt.Sprintf("Backup salvato in %s", path), false)
}

func (m *Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.importStage {
	case importPath:
		switch msg.String() {
		case "esc":
			m.importStage = importIdle
			m.importInput.Blur()
			return m, nil
		case "enter":
			m.loadImportCandidate()
			return m, nil
		}
		var cmd tea.Cmd
		m.importInput, cmd = m.importInput.Update(msg)
		return m, cmd

	case importConfirm:
		switch msg.String() {
		case "y", "Y":
			m.applyImport()
		case "n", "N", "esc":
			m.importStage = importIdle
			m.setNote("Importazione annullata.", false)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) loadImportCandidate() {
	path := strings.TrimSpace(m.importInput.Value())
	if path == "" {
		return
	}
	data, err := backup.ParseFile(path)
	if err != nil {
		m.setNote(fmt.Sprintf("File di backup non valido: %v", err), true)
		m.importStage = importIdle
		m.importInput.Blur()
		return
	}
	m.pendingImport = data
	m.importStage = importConfirm
	m.importInput.Blur()
}

// applyImport replaces both stored collections with the parsed backup and
// rebuilds the profile-dependent state. Stored data is only touched here,
// after the document validated and the user confirmed.
func (m *Model) applyImport() {
	m.sessions.Replace(m.ctx, m.pendingImport.Sessions)
	m.profiles.Replace(m.ctx, m.pendingImport.Profiles)

	m.profileList = m.profiles.Load(m.ctx)
	m.profileIdx = 0
	current := m.engine.Profile().ID
	for i, p := range m.profileList {
		if p.ID == current {
			m.profileIdx = i
			break
		}
	}
	m.engine.SelectProfile(m.profileList[m.profileIdx])
	m.sessionCache = m.sessions.Load(m.ctx)
	m.summaryText = ""

	m.importStage = importIdle
	m.pendingImport = model.BackupData{}
	m.setNote("Dati importati con successo.", false)
}

func (m *Model) setNote(text string, isError bool) {
	m.settingsNote = text
	m.settingsErr = isError
}

func (m *Model) viewSettings(width int) string {
	var b strings.Builder
	b.WriteString(cardValueStyle.Render("Impostazioni"))
	b.WriteString("\n\n")

	coachState := "configurato"
	if !m.coach.Configured() {
		coachState = "non configurato (imposta GEMINI_API_KEY)"
	}
	b.WriteString(fmt.Sprintf("Coach AI: %s\n", coachState))
	b.WriteString(fmt.Sprintf("Cartella di esportazione: %s\n", m.exportDir))
	b.WriteString("\n")

	switch m.importStage {
	case importPath:
		b.WriteString("Percorso del backup da importare:\n")
		b.WriteString(m.importInput.View())
		b.WriteString("\n")
	case importConfirm:
		b.WriteString(noticeStyle.Render(fmt.Sprintf(
			"Il backup contiene %d sessioni e %d profili.", len(m.pendingImport.Sessions), len(m.pendingImport.Profiles))))
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Sostituirà tutti i dati attuali. Continuare? (y/n)"))
		b.WriteString("\n")
	}

	if m.settingsNote != "" {
		style := noticeStyle
		if m.settingsErr {
			style = errorStyle
		}
		b.WriteString("\n")
		for _, line := range wrapText(m.settingsNote, maxInt(width-2, 10)) {
			b.WriteString(style.Render(line))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
