package domain

import "time"

// Schedule holds the user-tunable pomodoro timings. Repeat is carried in
// the persisted record for forward compatibility but nothing reads it yet.
type Schedule struct {
	Work   time.Duration
	Rest   time.Duration
	Repeat int
}

// DefaultSchedule returns the stock 25m work / 5m rest / 8 repeat schedule.
func DefaultSchedule() Schedule {
	return Schedule{
		Work:   25 * time.Minute,
		Rest:   5 * time.Minute,
		Repeat: 8,
	}
}

// Total is the full span of one pomodoro, work plus rest. Elapsed time at
// or past this boundary means the pomodoro is done.
func (s Schedule) Total() time.Duration {
	return s.Work + s.Rest
}
