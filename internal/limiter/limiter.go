// Package limiter caps the number of coach messages per calendar day.
package limiter

import (
	"context"
	"time"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/store"
)

// DailyLimit is the default number of prompts allowed per day.
const DailyLimit = 100

const dateLayout = "2006-01-02"

// Limiter tracks a per-day prompt counter persisted best-effort in the store.
// It never errors: a failed read degrades to a fresh in-memory counter, and
// the only way to become limited is reaching the count threshold. The day
// boundary is the local calendar date.
type Limiter struct {
	st    *store.Store
	state model.RateLimitState
	limit int
	now   func() time.Time
}

// New loads the persisted limiter state. A non-positive limit selects
// DailyLimit.
func New(ctx context.Context, st *store.Store, limit int) *Limiter {
	if limit <= 0 {
		limit = DailyLimit
	}
	l := &Limiter{st: st, limit: limit, now: time.Now}
	l.state = store.Get(ctx, st, store.KeyLimitState, model.RateLimitState{
		Count:         0,
		LastResetDate: l.today(),
	})
	return l
}

func (l *Limiter) today() string {
	return l.now().Format(dateLayout)
}

// CheckAndMaybeReset zeroes the counter when the stored date is not today.
// It must run before any read of the remaining quota.
func (l *Limiter) CheckAndMaybeReset(ctx context.Context) {
	today := l.today()
	if l.state.LastResetDate == today {
		return
	}
	l.state = model.RateLimitState{Count: 0, LastResetDate: today}
	l.persist(ctx)
}

// Remaining returns the prompts left today, never negative.
func (l *Limiter) Remaining() int {
	remaining := l.limit - l.state.Count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsLimited reports whether today's quota is exhausted.
func (l *Limiter) IsLimited() bool {
	return l.Remaining() <= 0
}

// RecordPrompt consumes one unit of quota. If the day rolled over before the
// reset check ran, the counter restarts at one instead of incrementing the
// stale value.
func (l *Limiter) RecordPrompt(ctx context.Context) {
	today := l.today()
	if l.state.LastResetDate != today {
		l.state = model.RateLimitState{Count: 1, LastResetDate: today}
	} else {
		l.state.Count++
	}
	l.persist(ctx)
}

func (l *Limiter) persist(ctx context.Context) {
	store.Set(ctx, l.st, store.KeyLimitState, l.state)
}
