package repository

import (
	"context"

	"github.com/pomo-cli/pomo/internal/domain"
)

// ScheduleRepo persists the user's schedule (the config file).
//
// Load never fails: a missing file falls back to DefaultSchedule silently,
// and an unreadable or corrupt file falls back with a diagnostic event.
// Only writes surface errors.
type ScheduleRepo interface {
	Load(ctx context.Context) domain.Schedule
	Write(ctx context.Context, s domain.Schedule) error
	Path() string
}

// SessionRepo persists the single-session marker (the state file), under
// the same load policy as ScheduleRepo.
type SessionRepo interface {
	Load(ctx context.Context) domain.Session
	Save(ctx context.Context, s domain.Session) error
}
