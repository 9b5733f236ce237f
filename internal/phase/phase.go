package phase

import (
	"time"

	"github.com/pomo-cli/pomo/internal/domain"
)

// Kind identifies which part of the pomodoro cycle a session is in.
type Kind string

const (
	Idle Kind = "idle"
	Work Kind = "work"
	Rest Kind = "rest"
	Done Kind = "done"
)

// Phase is the state of a session at a single instant. Remaining is
// populated for Work and Rest only; it is zero on Idle and Done.
type Phase struct {
	Kind      Kind
	Remaining time.Duration
}

// Compute derives the current phase from the recorded start, the current
// time, and the schedule. Phase is never stored or advanced incrementally;
// every query recomputes it from scratch, so Done stays Done until an
// explicit start or stop changes the session.
//
// The work->rest boundary is inclusive: elapsed exactly equal to s.Work is
// still Work with zero remaining. Elapsed counts whole seconds, truncating
// any sub-second fraction; elapsed before the start (clock moved backwards)
// is clamped to zero.
func Compute(startedAt *time.Time, now time.Time, s domain.Schedule) Phase {
	if startedAt == nil {
		return Phase{Kind: Idle}
	}

	elapsed := now.Sub(*startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	elapsed = elapsed.Truncate(time.Second)

	if elapsed <= s.Work {
		return Phase{Kind: Work, Remaining: s.Work - elapsed}
	}
	if elapsed < s.Total() {
		return Phase{Kind: Rest, Remaining: s.Total() - elapsed}
	}
	return Phase{Kind: Done}
}
