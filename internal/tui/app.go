// Package tui implements the interactive terminal interface.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/coach"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/limiter"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/store"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/timer"
)

type view int

const (
	viewTimer view = iota
	viewAnalytics
	viewChat
	viewSettings
)

var viewTitles = []string{"Timer", "Analisi", "Coach", "Impostazioni"}

type tickMsg struct{ seq int }

type chatReplyMsg struct{ text string }

type summaryMsg struct{ text string }

// Options carries the wired application services into the interface.
type Options struct {
	Sessions    *store.Sessions
	Profiles    *store.Profiles
	Limiter     *limiter.Limiter
	Coach       *coach.Client
	ExportDir   string
	CurveWindow int
}

const (
	importIdle = iota
	importPath
	importConfirm
)

// Model is the root bubbletea model. One instance owns the whole screen and
// dispatches to the active view.
type Model struct {
	ctx      context.Context
	sessions *store.Sessions
	profiles *store.Profiles
	limiter  *limiter.Limiter
	coach    *coach.Client

	exportDir   string
	curveWindow int

	width  int
	height int

	activeView view

	engine      *timer.Engine
	profileList []model.TimerProfile
	profileIdx  int
	progressBar progress.Model
	tickSeq     int

	creatorOpen   bool
	creatorInputs []textinput.Model
	creatorFocus  int

	feedbackOpen     bool
	feedbackDuration int
	ratings          [4]int
	ratingFocus      int
	notesInput       textarea.Model

	chatMessages []model.ChatMessage
	chatInput    textinput.Model
	chatView     viewport.Model
	chatWaiting  bool

	analyticsView  viewport.Model
	summaryText    string
	summaryWaiting bool
	sessionCache   []model.StudySession

	wait spinner.Model

	importStage   int
	importInput   textinput.Model
	pendingImport model.BackupData
	settingsNote  string
	settingsErr   bool
}

// New assembles the interface. The profile list is loaded up front and the
// first profile drives the timer.
func New(ctx context.Context, opts Options) *Model {
	profiles := opts.Profiles.Load(ctx)

	chatInput := textinput.New()
	chatInput.Placeholder = "Scrivi un messaggio..."
	chatInput.CharLimit = 500
	chatInput.Focus()

	importInput := textinput.New()
	importInput.Placeholder = "percorso del file di backup"

	notes := textarea.New()
	notes.Placeholder = "Note sulla sessione (facoltative)"
	notes.SetHeight(3)
	notes.CharLimit = 1000

	wait := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := &Model{
		ctx:          ctx,
		sessions:     opts.Sessions,
		profiles:     opts.Profiles,
		limiter:      opts.Limiter,
		coach:        opts.Coach,
		exportDir:    opts.ExportDir,
		curveWindow:  opts.CurveWindow,
		engine:       timer.New(profiles[0]),
		profileList:  profiles,
		progressBar:  progress.New(progress.WithDefaultGradient()),
		chatInput:    chatInput,
		importInput:  importInput,
		notesInput:   notes,
		wait:         wait,
		chatMessages: []model.ChatMessage{{Role: model.RoleModel, Text: coach.Greeting}},
	}
	m.creatorInputs = newCreatorInputs()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		return m.updateTick(msg)

	case chatReplyMsg:
		m.chatWaiting = false
		m.chatMessages = append(m.chatMessages, model.ChatMessage{Role: model.RoleModel, Text: msg.text})
		m.refreshChatView()
		return m, nil

	case summaryMsg:
		m.summaryWaiting = false
		m.summaryText = msg.text
		m.refreshAnalyticsView()
		return m, nil

	case spinner.TickMsg:
		if !m.chatWaiting && !m.summaryWaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.wait, cmd = m.wait.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.feedbackOpen {
		return m.updateFeedback(msg)
	}
	if m.creatorOpen && m.activeView == viewTimer {
		return m.updateCreator(msg)
	}
	if m.importStage != importIdle && m.activeView == viewSettings {
		return m.updateImport(msg)
	}

	switch msg.String() {
	case "tab":
		m.switchView((m.activeView + 1) % view(len(viewTitles)))
		return m, nil
	case "shift+tab":
		m.switchView((m.activeView + view(len(viewTitles)) - 1) % view(len(viewTitles)))
		return m, nil
	case "right":
		// In the chat view arrow keys belong to the input.
		if m.activeView != viewChat {
			m.switchView((m.activeView + 1) % view(len(viewTitles)))
			return m, nil
		}
	case "left":
		if m.activeView != viewChat {
			m.switchView((m.activeView + view(len(viewTitles)) - 1) % view(len(viewTitles)))
			return m, nil
		}
	case "q":
		if m.activeView != viewChat {
			return m, tea.Quit
		}
	}

	switch m.activeView {
	case viewTimer:
		return m.updateTimerKey(msg)
	case viewAnalytics:
		return m.updateAnalyticsKey(msg)
	case viewChat:
		return m.updateChatKey(msg)
	case viewSettings:
		return m.updateSettingsKey(msg)
	}
	return m, nil
}

func (m *Model) switchView(v view) {
	m.activeView = v
	m.settingsNote = ""
	if v == viewAnalytics {
		m.sessionCache = m.sessions.Load(m.ctx)
		m.refreshAnalyticsView()
	}
	if v == viewChat {
		m.limiter.CheckAndMaybeReset(m.ctx)
		m.refreshChatView()
	}
}

func (m *Model) resize() {
	bodyWidth := maxInt(m.width-2, 20)
	bodyHeight := maxInt(m.height-headerHeight-footerHeight, 5)
	m.progressBar.Width = minInt(bodyWidth-4, 60)
	m.chatView.Width = bodyWidth
	m.chatView.Height = maxInt(bodyHeight-3, 3)
	m.analyticsView.Width = bodyWidth
	m.analyticsView.Height = bodyHeight
	m.notesInput.SetWidth(minInt(bodyWidth-8, 60))
	m.refreshChatView()
	m.refreshAnalyticsView()
}

const (
	headerHeight = 4
	footerHeight = 1
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "caricamento..."
	}
	bodyWidth := maxInt(m.width-2, 20)
	bodyHeight := maxInt(m.height-headerHeight-footerHeight, 5)

	var body string
	switch m.activeView {
	case viewTimer:
		body = m.viewTimer(bodyWidth, bodyHeight)
	case viewAnalytics:
		body = m.viewAnalytics()
	case viewChat:
		body = m.viewChat(bodyWidth)
	case viewSettings:
		body = m.viewSettings(bodyWidth)
	}
	if m.feedbackOpen {
		body = lipgloss.Place(bodyWidth, bodyHeight, lipgloss.Center, lipgloss.Center, m.viewFeedback())
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteByte('\n')
	b.WriteString(fitLines(body, bodyWidth, bodyHeight))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(truncateLine(m.helpLine(), m.width)))
	return b.String()
}

func (m *Model) viewTabs() string {
	tabs := make([]string, 0, len(viewTitles))
	for i, title := range viewTitles {
		style := inactiveNavStyle
		if view(i) == m.activeView {
			style = activeNavStyle
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) helpLine() string {
	if m.feedbackOpen {
		return "tab: campo • 1-5: voto • invio/ctrl+s: salva • esc: annulla"
	}
	if m.creatorOpen {
		return "tab: campo • invio: crea • esc: annulla"
	}
	if m.importStage == importPath {
		return "invio: carica • esc: annulla"
	}
	if m.importStage == importConfirm {
		return "y: sostituisci i dati • n/esc: annulla"
	}
	switch m.activeView {
	case viewTimer:
		return "spazio: avvia/pausa • r: reset • e: estendi • p: profilo • n: nuovo profilo • tab: vista • q: esci"
	case viewAnalytics:
		return "s: analisi AI • ↑↓: scorri • tab: vista • q: esci"
	case viewChat:
		return "invio: invia • tab: vista • ctrl+c: esci"
	case viewSettings:
		return "x: esporta • i: importa • k: reimposta coach • tab: vista • q: esci"
	}
	return ""
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (m *Model) updateTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.tickSeq || !m.engine.Running() {
		return m, nil
	}
	completedSeconds, completed := m.engine.Tick()
	if completed {
		m.openFeedback(completedSeconds)
	}
	if !m.engine.Running() {
		return m, nil
	}
	return m, tickCmd(msg.seq)
}
