package service

import (
	"context"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/repository"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
}

func NewScheduleService(schedules repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedules: schedules}
}

// Init writes a fresh default config, but only when force is set; an
// existing configuration is never overwritten by accident.
func (s *scheduleService) Init(ctx context.Context, force bool) (InitResult, error) {
	res := InitResult{Path: s.schedules.Path()}
	if !force {
		return res, nil
	}
	if err := s.schedules.Write(ctx, domain.DefaultSchedule()); err != nil {
		return res, err
	}
	res.Written = true
	return res, nil
}
