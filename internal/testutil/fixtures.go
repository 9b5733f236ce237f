package testutil

import (
	"time"

	"github.com/pomo-cli/pomo/internal/domain"
)

// Schedule options
type ScheduleOption func(*domain.Schedule)

func WithWork(d time.Duration) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Work = d
	}
}

func WithRest(d time.Duration) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Rest = d
	}
}

func WithRepeat(n int) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Repeat = n
	}
}

// NewTestSchedule returns the default schedule with options applied.
func NewTestSchedule(opts ...ScheduleOption) domain.Schedule {
	s := domain.DefaultSchedule()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestSession returns a running session started at the given instant.
func NewTestSession(startedAt time.Time) domain.Session {
	return domain.Session{StartedAt: &startedAt}
}
