package stats

import (
	"testing"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

func sampleSessions() []model.StudySession {
	return []model.StudySession{
		{
			ID: "a", Date: "2025-03-01T10:00:00Z", Duration: 45,
			PerformanceMetrics: model.PerformanceMetrics{Stress: 2, Tiredness: 3, Happiness: 4, Productivity: 5},
		},
		{
			ID: "b", Date: "2025-03-02T10:00:00Z", Duration: 30,
			PerformanceMetrics: model.PerformanceMetrics{Stress: 4, Tiredness: 2, Happiness: 3, Productivity: 3},
		},
		{
			ID: "c", Date: "2025-03-03T10:00:00Z", Duration: 60,
			PerformanceMetrics: model.PerformanceMetrics{Stress: 1, Tiredness: 1, Happiness: 5, Productivity: 4},
		},
	}
}

func TestBuildSeriesOrderAndNames(t *testing.T) {
	series := BuildSeries(sampleSessions())
	if len(series) != 4 {
		t.Fatalf("expected 4 series, got %d", len(series))
	}
	wantNames := []string{"Produttività", "Felicità", "Stress", "Stanchezza"}
	for i, name := range wantNames {
		if series[i].Name != name {
			t.Fatalf("series %d: expected %q, got %q", i, name, series[i].Name)
		}
		if len(series[i].Values) != 3 {
			t.Fatalf("series %q: expected 3 values, got %d", name, len(series[i].Values))
		}
	}
	if series[0].Values[0] != 5 || series[0].Values[2] != 4 {
		t.Fatalf("unexpected productivity series: %v", series[0].Values)
	}
	if series[2].Values[1] != 4 {
		t.Fatalf("unexpected stress series: %v", series[2].Values)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	got := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestMovingAverageWindowOneCopies(t *testing.T) {
	values := []float64{3, 1, 4}
	got := MovingAverage(values, 1)
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("window 1 must copy input, got %v", got)
		}
	}
	got[0] = 99
	if values[0] == 99 {
		t.Fatalf("moving average must not alias the input slice")
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	got := Sparkline([]float64{3, 3, 3})
	if len([]rune(got)) != 3 {
		t.Fatalf("expected 3 chars, got %q", got)
	}
	if got[0] != got[1] || got[1] != got[2] {
		t.Fatalf("flat series must render uniformly: %q", got)
	}
}

func TestSessionDateFallsBackToZero(t *testing.T) {
	if got := SessionDate(model.StudySession{Date: "not-a-date"}); !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
	if got := SessionDate(model.StudySession{Date: "2025-03-01T10:00:00Z"}); got.IsZero() {
		t.Fatalf("expected parsed time")
	}
}
