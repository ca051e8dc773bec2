package stats

import (
	"fmt"
	"io"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// MinSessionsForChart is the number of sessions needed before trend charts
// are meaningful.
const MinSessionsForChart = 2

// NoChartNotice is shown in place of the chart with too few sessions.
const NoChartNotice = "Completa almeno due sessioni di studio per vedere i tuoi progressi qui."

// Report contains precomputed analytics for rendering.
type Report struct {
	Sessions        []model.StudySession
	Series          []Series
	Count           int
	TotalMinutes    float64
	AvgProductivity float64
	AvgHappiness    float64
	AvgStress       float64
	AvgTiredness    float64
}

// BuildReport derives summary figures and smoothed metric series. A window
// below 2 disables smoothing.
func BuildReport(sessions []model.StudySession, window int) Report {
	r := Report{
		Sessions: sessions,
		Count:    len(sessions),
	}
	var sums model.PerformanceMetrics
	for _, s := range sessions {
		r.TotalMinutes += s.Duration
		sums.Productivity += s.Productivity
		sums.Happiness += s.Happiness
		sums.Stress += s.Stress
		sums.Tiredness += s.Tiredness
	}
	if r.Count > 0 {
		n := float64(r.Count)
		r.AvgProductivity = float64(sums.Productivity) / n
		r.AvgHappiness = float64(sums.Happiness) / n
		r.AvgStress = float64(sums.Stress) / n
		r.AvgTiredness = float64(sums.Tiredness) / n
	}
	r.Series = BuildSeries(sessions)
	for i := range r.Series {
		r.Series[i].Values = MovingAverage(r.Series[i].Values, window)
	}
	return r
}

// RenderSummary prints the aggregate figures.
func RenderSummary(w io.Writer, r Report) error {
	if r.Count == 0 {
		_, err := fmt.Fprintln(w, "Nessuna sessione registrata.")
		return err
	}
	lines := []string{
		"Riepilogo",
		fmt.Sprintf("Sessioni: %d", r.Count),
		fmt.Sprintf("Minuti di studio: %.1f", r.TotalMinutes),
		fmt.Sprintf("Produttività media: %.2f", r.AvgProductivity),
		fmt.Sprintf("Felicità media: %.2f", r.AvgHappiness),
		fmt.Sprintf("Stress medio: %.2f", r.AvgStress),
		fmt.Sprintf("Stanchezza media: %.2f", r.AvgTiredness),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSessionTable prints the most recent sessions, newest last.
func RenderSessionTable(w io.Writer, sessions []model.StudySession, last int) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "Nessuna sessione registrata.")
		return err
	}
	if last > 0 && len(sessions) > last {
		sessions = sessions[len(sessions)-last:]
	}
	headers := []string{"Data", "Durata (min)", "Prod", "Felicità", "Stress", "Stanch", "Note"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		date := s.Date
		if parsed := SessionDate(s); !parsed.IsZero() {
			date = parsed.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			date,
			fmt.Sprintf("%.1f", s.Duration),
			fmt.Sprintf("%d", s.Productivity),
			fmt.Sprintf("%d", s.Happiness),
			fmt.Sprintf("%d", s.Stress),
			fmt.Sprintf("%d", s.Tiredness),
			truncateNotes(s.Notes, 40),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func truncateNotes(notes string, width int) string {
	runes := []rune(notes)
	if len(runes) <= width {
		return notes
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
