// Package coach wraps the Gemini API for the chat assistant and the
// analytics summary.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// Default Gemini models.
const (
	DefaultChatModel    = "gemini-flash-lite-latest"
	DefaultSummaryModel = "gemini-2.5-pro"
)

const systemInstruction = "You are 'Focus', a friendly and encouraging mental coach for students. " +
	"Your goal is to help users with their study habits, manage stress, and stay motivated. " +
	"Provide concise, positive, and actionable advice. Keep your responses brief, in Italian, and easy to understand."

const summaryPrompt = "Sei un analista di dati specializzato nella produttività degli studenti. " +
	"Analizza i seguenti dati della sessione di studio forniti in formato JSON. " +
	"Identifica le tendenze in stress, stanchezza, felicità e produttività. " +
	"Fornisci un riepilogo conciso delle prestazioni dell'utente e offri 3 consigli specifici e attuabili per migliorare. " +
	"Rivolgiti direttamente all'utente in tono di supporto e in italiano.\n\nDati:\n%s\n"

// Canned user-facing strings. Remote failures are never propagated; callers
// always receive readable text.
const (
	Greeting          = "Ciao! Sono Focus, il tuo mental coach. Come posso aiutarti a studiare meglio oggi?"
	chatFallback      = "Oops! Qualcosa è andato storto. Potrebbe essere un problema con la API Key. Riprova più tardi."
	summaryFallback   = "Impossibile generare l'analisi in questo momento. Per favore riprova."
	noSessionsSummary = "Non ci sono ancora abbastanza dati per un'analisi. Completa qualche sessione di studio!"
	noKeyNotice       = "API key non trovata. Imposta la variabile d'ambiente GEMINI_API_KEY e riavvia."
)

// Client is an explicitly-owned handle to the text-generation service. The
// underlying connection and chat session are created lazily and dropped by
// Reset, e.g. after a credential rotation or a failed call.
type Client struct {
	apiKey       string
	chatModel    string
	summaryModel string

	ai   *genai.Client
	chat *genai.Chat
}

// New returns an unconnected client. Empty model names select the defaults.
func New(apiKey, chatModel, summaryModel string) *Client {
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	if summaryModel == "" {
		summaryModel = DefaultSummaryModel
	}
	return &Client{apiKey: apiKey, chatModel: chatModel, summaryModel: summaryModel}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Reset drops the cached connection and chat history so the next call dials
// fresh.
func (c *Client) Reset() {
	c.ai = nil
	c.chat = nil
}

func (c *Client) ensureClient(ctx context.Context) (*genai.Client, error) {
	if c.ai != nil {
		return c.ai, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("missing API key")
	}
	ai, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.ai = ai
	return ai, nil
}

func (c *Client) ensureChat(ctx context.Context) (*genai.Chat, error) {
	if c.chat != nil {
		return c.chat, nil
	}
	ai, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}
	chat, err := ai.Chats.Create(ctx, c.chatModel, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	c.chat = chat
	return chat, nil
}

// ChatSend forwards one user message to the coach, preserving prior turns
// server-side, and returns the reply text. Failures reset the client and
// return a canned apology instead of an error.
func (c *Client) ChatSend(ctx context.Context, message string) string {
	if !c.Configured() {
		return noKeyNotice
	}
	chat, err := c.ensureChat(ctx)
	if err != nil {
		zap.S().Warnw("chat unavailable", "error", err)
		c.Reset()
		return chatFallback
	}
	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		zap.S().Warnw("chat message failed", "error", err)
		c.Reset()
		return chatFallback
	}
	text := resp.Text()
	if text == "" {
		return chatFallback
	}
	return text
}

// Summary asks for a natural-language analysis of the recorded sessions.
// With no sessions it short-circuits to a fixed notice. Failures reset the
// client and return a canned apology instead of an error.
func (c *Client) Summary(ctx context.Context, sessions []model.StudySession) string {
	if len(sessions) == 0 {
		return noSessionsSummary
	}
	if !c.Configured() {
		return noKeyNotice
	}
	ai, err := c.ensureClient(ctx)
	if err != nil {
		zap.S().Warnw("summary unavailable", "error", err)
		c.Reset()
		return summaryFallback
	}
	payload, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		zap.S().Warnw("failed to encode sessions for summary", "error", err)
		return summaryFallback
	}
	prompt := fmt.Sprintf(summaryPrompt, payload)
	resp, err := ai.Models.GenerateContent(ctx, c.summaryModel, genai.Text(prompt), nil)
	if err != nil {
		zap.S().Warnw("summary generation failed", "error", err)
		c.Reset()
		return summaryFallback
	}
	text := resp.Text()
	if text == "" {
		return summaryFallback
	}
	return text
}
