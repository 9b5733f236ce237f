package service

import (
	"context"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	clock    Clock
}

func NewSessionService(sessions repository.SessionRepo, clock Clock) SessionService {
	return &sessionService{sessions: sessions, clock: clock}
}

// Start records the current instant as the session start, replacing any
// in-progress session without a guard.
func (s *sessionService) Start(ctx context.Context) error {
	now := s.clock.Now()
	return s.sessions.Save(ctx, domain.Session{StartedAt: &now})
}

// Stop clears the session marker. Stopping when nothing is running is
// still success; the cleared record is persisted either way.
func (s *sessionService) Stop(ctx context.Context) error {
	return s.sessions.Save(ctx, domain.Session{})
}
