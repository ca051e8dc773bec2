package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/stats"
)

func (m *Model) updateAnalyticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		return m, m.requestSummary()
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.analyticsView, cmd = m.analyticsView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) requestSummary() tea.Cmd {
	if m.summaryWaiting {
		return nil
	}
	m.summaryWaiting = true
	m.refreshAnalyticsView()

	ctx := m.ctx
	client := m.coach
	sessions := m.sessionCache
	return tea.Batch(
		func() tea.Msg { return summaryMsg{text: client.Summary(ctx, sessions)} },
		m.wait.Tick,
	)
}

func (m *Model) refreshAnalyticsView() {
	if m.analyticsView.Width <= 0 {
		return
	}
	report := stats.BuildReport(m.sessionCache, m.curveWindow)

	var b strings.Builder
	if err := stats.RenderSummary(&b, report); err != nil {
		return
	}
	if report.Count >= stats.MinSessionsForChart {
		chartWidth := stats.ChartWidthFor(m.analyticsView.Width)
		if err := stats.RenderChart(&b, report.Series, chartWidth, stats.DefaultChartHeight, true); err != nil {
			return
		}
		b.WriteByte('\n')
	} else {
		b.WriteString(noticeStyle.Render(stats.NoChartNotice))
		b.WriteString("\n\n")
	}
	if err := stats.RenderSessionTable(&b, report.Sessions, 10); err != nil {
		return
	}

	b.WriteString(cardTitleStyle.Render("Analisi AI"))
	b.WriteByte('\n')
	switch {
	case m.summaryWaiting:
		b.WriteString(m.wait.View())
		b.WriteString(noticeStyle.Render("analisi in corso..."))
	case m.summaryText != "":
		wrapWidth := maxInt(m.analyticsView.Width-2, 10)
		for _, line := range wrapText(m.summaryText, wrapWidth) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	default:
		b.WriteString(noticeStyle.Render("Premi 's' per generare un'analisi delle tue sessioni."))
	}
	m.analyticsView.SetContent(b.String())
}

func (m *Model) viewAnalytics() string {
	return m.analyticsView.View()
}
