// Package model defines shared data structures.
package model

// Phase is one of the two timer states.
type Phase int

const (
	// PhaseStudy is the focused study phase.
	PhaseStudy Phase = iota
	// PhaseBreak is the rest phase between study phases.
	PhaseBreak
)

// String returns the Italian display label for the phase.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "Pausa"
	}
	return "Studio"
}

// TimerProfile is a named pair of study/break durations in seconds.
type TimerProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudyTime int    `json:"studyTime"`
	BreakTime int    `json:"breakTime"`
}

// PerformanceMetrics holds the four self-reported ratings, each 1-5.
type PerformanceMetrics struct {
	Stress       int `json:"stress"`
	Tiredness    int `json:"tiredness"`
	Happiness    int `json:"happiness"`
	Productivity int `json:"productivity"`
}

// StudySession is one completed study phase with user feedback.
// Duration is in minutes and may be fractional.
type StudySession struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Duration float64 `json:"duration"`
	Notes    string  `json:"notes"`
	PerformanceMetrics
}

// RateLimitState is the persisted daily chat quota counter.
type RateLimitState struct {
	Count         int    `json:"count"`
	LastResetDate string `json:"lastResetDate"`
}

// BackupData is the export/import document holding the full persisted state.
type BackupData struct {
	Sessions []StudySession `json:"sessions"`
	Profiles []TimerProfile `json:"profiles"`
}

// ChatMessage is one turn of the coach conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// DefaultProfile returns the profile seeded when none are persisted.
func DefaultProfile() TimerProfile {
	return TimerProfile{
		ID:        "default",
		Name:      "Pomodoro Classico",
		StudyTime: 45 * 60,
		BreakTime: 15 * 60,
	}
}
