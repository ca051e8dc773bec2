package store

import (
	"context"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// Sessions is the append-only collection of completed study sessions.
type Sessions struct {
	st *Store
}

// NewSessions returns a session repository backed by the store.
func NewSessions(st *Store) *Sessions {
	return &Sessions{st: st}
}

// Load returns all recorded sessions in insertion order.
func (r *Sessions) Load(ctx context.Context) []model.StudySession {
	return Get(ctx, r.st, KeySessions, []model.StudySession{})
}

// Append records one completed session.
func (r *Sessions) Append(ctx context.Context, s model.StudySession) []model.StudySession {
	sessions := append(r.Load(ctx), s)
	Set(ctx, r.st, KeySessions, sessions)
	return sessions
}

// Replace overwrites the whole collection. Used only by backup import.
func (r *Sessions) Replace(ctx context.Context, sessions []model.StudySession) {
	if sessions == nil {
		sessions = []model.StudySession{}
	}
	Set(ctx, r.st, KeySessions, sessions)
}
