package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

const chatLimitNotice = "Hai raggiunto il limite giornaliero di messaggi. Torna domani!"

func (m *Model) updateChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	case "enter":
		return m, m.sendChat()
	}
	if m.chatWaiting {
		return m, nil
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// sendChat consumes one unit of the daily quota and dispatches the message to
// the coach in the background. Quota and in-flight checks make it a no-op
// instead of an error.
func (m *Model) sendChat() tea.Cmd {
	if m.chatWaiting {
		return nil
	}
	text := strings.TrimSpace(m.chatInput.Value())
	if text == "" {
		return nil
	}
	m.limiter.CheckAndMaybeReset(m.ctx)
	if m.limiter.IsLimited() {
		m.chatMessages = append(m.chatMessages, model.ChatMessage{Role: model.RoleModel, Text: chatLimitNotice})
		m.refreshChatView()
		return nil
	}
	m.limiter.RecordPrompt(m.ctx)

	m.chatMessages = append(m.chatMessages, model.ChatMessage{Role: model.RoleUser, Text: text})
	m.chatInput.Reset()
	m.chatWaiting = true
	m.refreshChatView()

	ctx := m.ctx
	client := m.coach
	return tea.Batch(
		func() tea.Msg { return chatReplyMsg{text: client.ChatSend(ctx, text)} },
		m.wait.Tick,
	)
}

func (m *Model) refreshChatView() {
	if m.chatView.Width <= 0 {
		return
	}
	wrapWidth := maxInt(m.chatView.Width-4, 10)
	var b strings.Builder
	for i, msg := range m.chatMessages {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := "Focus"
		style := modelBubbleStyle
		if msg.Role == model.RoleUser {
			label = "Tu"
			style = userBubbleStyle
		}
		b.WriteString(cardTitleStyle.Render(label))
		b.WriteByte('\n')
		for _, line := range wrapText(msg.Text, wrapWidth) {
			b.WriteString(style.Render("  " + line))
			b.WriteByte('\n')
		}
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}

func (m *Model) viewChat(width int) string {
	var b strings.Builder
	b.WriteString(m.chatView.View())
	b.WriteByte('\n')
	switch {
	case m.chatWaiting:
		b.WriteString(m.wait.View())
		b.WriteString(noticeStyle.Render("Focus sta scrivendo..."))
	case m.limiter.IsLimited():
		b.WriteString(noticeStyle.Render(chatLimitNotice))
	default:
		b.WriteString(m.chatInput.View())
	}
	b.WriteByte('\n')

	footer := fmt.Sprintf("Messaggi rimasti oggi: %d", m.limiter.Remaining())
	if !m.coach.Configured() {
		footer += " • API key mancante"
	}
	b.WriteString(helpStyle.Render(truncateLine(footer, width)))
	return b.String()
}
