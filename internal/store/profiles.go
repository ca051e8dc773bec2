package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// Profiles is the collection of timer profiles.
type Profiles struct {
	st *Store
}

// NewProfiles returns a profile repository backed by the store.
func NewProfiles(st *Store) *Profiles {
	return &Profiles{st: st}
}

// Load returns the persisted profiles, seeding the default profile when
// nothing is stored yet. Entries with non-positive durations are skipped:
// imported backups are not schema-validated, and the timer engine only
// accepts positive durations.
func (r *Profiles) Load(ctx context.Context) []model.TimerProfile {
	stored := Get(ctx, r.st, KeyProfiles, []model.TimerProfile(nil))
	profiles := make([]model.TimerProfile, 0, len(stored))
	for _, p := range stored {
		if p.StudyTime <= 0 || p.BreakTime <= 0 {
			zap.S().Warnw("skipping profile with non-positive durations",
				"id", p.ID, "studyTime", p.StudyTime, "breakTime", p.BreakTime)
			continue
		}
		profiles = append(profiles, p)
	}
	if len(profiles) == 0 {
		return []model.TimerProfile{model.DefaultProfile()}
	}
	return profiles
}

// Add appends a new profile. Profiles are immutable once created.
func (r *Profiles) Add(ctx context.Context, p model.TimerProfile) []model.TimerProfile {
	profiles := append(r.Load(ctx), p)
	Set(ctx, r.st, KeyProfiles, profiles)
	return profiles
}

// Replace overwrites the whole collection. Used only by backup import.
func (r *Profiles) Replace(ctx context.Context, profiles []model.TimerProfile) {
	if profiles == nil {
		profiles = []model.TimerProfile{}
	}
	Set(ctx, r.st, KeyProfiles, profiles)
}
