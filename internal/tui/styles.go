package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#38BDF8"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	studyClockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8")).Bold(true)
	breakClockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	phaseStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#38BDF8")).
			Padding(1, 2)

	userBubbleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modelBubbleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))

	ratingOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8")).Bold(true)
	ratingOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)
