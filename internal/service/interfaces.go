package service

import (
	"context"

	"github.com/pomo-cli/pomo/internal/phase"
)

type SessionService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// StatusService reports the current phase. Current has no error return:
// load failures are swallowed to defaults and the phase computation is
// total, so status cannot fail.
type StatusService interface {
	Current(ctx context.Context) phase.Phase
}

// InitResult reports where init wrote (or declined to write) the config.
type InitResult struct {
	Path    string
	Written bool
}

type ScheduleService interface {
	Init(ctx context.Context, force bool) (InitResult, error)
}
