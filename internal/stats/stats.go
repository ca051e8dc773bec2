// Package stats derives wellbeing analytics from recorded study sessions.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// Rating scale bounds shared by all four metrics.
const (
	RatingMin = 1
	RatingMax = 5
)

const sparkChars = " .:-=+*#%@"

// Series represents a named metric series in session order.
type Series struct {
	Name   string
	Values []float64
}

// BuildSeries extracts the four metric series from sessions, oldest first.
func BuildSeries(sessions []model.StudySession) []Series {
	productivity := make([]float64, len(sessions))
	happiness := make([]float64, len(sessions))
	stress := make([]float64, len(sessions))
	tiredness := make([]float64, len(sessions))
	for i, s := range sessions {
		productivity[i] = float64(s.Productivity)
		happiness[i] = float64(s.Happiness)
		stress[i] = float64(s.Stress)
		tiredness[i] = float64(s.Tiredness)
	}
	return []Series{
		{Name: "Produttività", Values: productivity},
		{Name: "Felicità", Values: happiness},
		{Name: "Stress", Values: stress},
		{Name: "Stanchezza", Values: tiredness},
	}
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// SessionDate parses a session's ISO timestamp for display. Unparseable
// dates yield the zero time.
func SessionDate(s model.StudySession) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, s.Date); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
