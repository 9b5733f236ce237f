package service

import (
	"context"

	"github.com/pomo-cli/pomo/internal/phase"
	"github.com/pomo-cli/pomo/internal/repository"
)

type statusService struct {
	schedules repository.ScheduleRepo
	sessions  repository.SessionRepo
	clock     Clock
}

func NewStatusService(schedules repository.ScheduleRepo, sessions repository.SessionRepo, clock Clock) StatusService {
	return &statusService{schedules: schedules, sessions: sessions, clock: clock}
}

// Current recomputes the phase from the persisted session against the
// current schedule. Read-only; persisted state is never touched.
func (s *statusService) Current(ctx context.Context) phase.Phase {
	sched := s.schedules.Load(ctx)
	sess := s.sessions.Load(ctx)
	return phase.Compute(sess.StartedAt, s.clock.Now(), sched)
}
