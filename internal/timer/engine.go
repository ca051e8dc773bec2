// Package timer implements the study/break countdown state machine.
package timer

import (
	"fmt"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// Extension bonuses applied by Extend, in seconds.
const (
	StudyExtension = 15 * 60
	BreakExtension = 5 * 60
)

// Engine is the timer state machine. It cycles Study -> Break -> Study
// indefinitely and always pauses itself at a phase boundary so the user
// resumes each phase explicitly. The engine holds no persisted state; it is
// rebuilt from the selected profile on startup.
type Engine struct {
	phase     model.Phase
	remaining int
	initial   int
	running   bool
	profile   model.TimerProfile
}

// New returns an engine in the Study phase, paused, loaded from profile.
// The profile must have positive durations; this is a caller contract.
func New(profile model.TimerProfile) *Engine {
	mustBeValid(profile)
	return &Engine{
		phase:     model.PhaseStudy,
		remaining: profile.StudyTime,
		initial:   profile.StudyTime,
		profile:   profile,
	}
}

func mustBeValid(p model.TimerProfile) {
	if p.StudyTime <= 0 || p.BreakTime <= 0 {
		panic(fmt.Sprintf("timer: profile %q has non-positive duration", p.ID))
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() model.Phase { return e.phase }

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int { return e.remaining }

// Initial returns the full length of the current phase including extensions.
func (e *Engine) Initial() int { return e.initial }

// Running reports whether the countdown is active.
func (e *Engine) Running() bool { return e.running }

// Profile returns the active profile.
func (e *Engine) Profile() model.TimerProfile { return e.profile }

// Progress returns the elapsed fraction of the current phase in [0, 1].
// Extensions grow the denominator, so extending dilutes progress instead of
// just delaying completion.
func (e *Engine) Progress() float64 {
	if e.initial <= 0 {
		return 0
	}
	return float64(e.initial-e.remaining) / float64(e.initial)
}

// SelectProfile switches the active profile. Selecting a profile always stops
// the countdown first; the now-paused engine then reloads the current phase
// from the new profile's duration. The phase itself does not change.
func (e *Engine) SelectProfile(profile model.TimerProfile) {
	mustBeValid(profile)
	e.running = false
	e.profile = profile
	e.reload()
}

// ToggleRun flips the running state. It has no effect on an engine that was
// never given a profile.
func (e *Engine) ToggleRun() {
	if e.initial <= 0 {
		return
	}
	e.running = !e.running
}

// Tick advances the countdown by one second. It must be called once per
// wall-clock second while the engine is running and is the sole mutator of
// the remaining time on the happy path.
//
// When the countdown reaches zero the engine transitions to the other phase,
// pauses itself, and — if the finished phase was Study — reports the
// completed study duration in seconds. The duration includes extensions.
func (e *Engine) Tick() (completedSeconds int, completed bool) {
	if !e.running {
		return 0, false
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining > 0 {
		return 0, false
	}

	finished := e.phase
	duration := e.initial
	if finished == model.PhaseStudy {
		e.phase = model.PhaseBreak
	} else {
		e.phase = model.PhaseStudy
	}
	e.reload()
	e.running = false
	if finished == model.PhaseStudy {
		return duration, true
	}
	return 0, false
}

// Reset pauses the engine and reloads the current phase from the active
// profile. The phase does not change. Reset is idempotent.
func (e *Engine) Reset() {
	e.running = false
	e.reload()
}

// Extend adds the phase bonus (+15 min Study, +5 min Break) to both the
// remaining and the initial time. Allowed while paused or running.
func (e *Engine) Extend() {
	bonus := StudyExtension
	if e.phase == model.PhaseBreak {
		bonus = BreakExtension
	}
	e.remaining += bonus
	e.initial += bonus
}

func (e *Engine) reload() {
	duration := e.profile.StudyTime
	if e.phase == model.PhaseBreak {
		duration = e.profile.BreakTime
	}
	e.remaining = duration
	e.initial = duration
}
