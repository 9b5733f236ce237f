package domain

import "time"

// Session is the durable single-session marker. StartedAt is nil when no
// pomodoro is running.
type Session struct {
	StartedAt *time.Time
}
