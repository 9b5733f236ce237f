package formatter

import (
	"fmt"
	"time"

	"github.com/pomo-cli/pomo/internal/phase"
)

// Mode selects how a phase is rendered.
type Mode string

const (
	// ModeFull is the default: a human-readable line, color on a TTY.
	ModeFull Mode = "full"
	// ModeCompact is the terse unstyled form for status-bar consumers.
	ModeCompact Mode = "compact"
)

// FormatPhase renders a phase as a single line. Any mode other than
// ModeCompact renders full.
func FormatPhase(p phase.Phase, mode Mode) string {
	if mode == ModeCompact {
		return formatCompact(p)
	}
	return formatFull(p)
}

func formatFull(p phase.Phase) string {
	switch p.Kind {
	case phase.Work:
		return PhaseColor(p.Kind).Render("W: " + FormatRemaining(p.Remaining))
	case phase.Rest:
		return PhaseColor(p.Kind).Render("R: " + FormatRemaining(p.Remaining))
	case phase.Done:
		return PhaseColor(p.Kind).Render("READY")
	default:
		return Dim("no pomodoro running")
	}
}

// Compact output is never styled; status bars want the raw bytes.
func formatCompact(p phase.Phase) string {
	switch p.Kind {
	case phase.Work:
		return "W:" + FormatRemaining(p.Remaining)
	case phase.Rest:
		return "R:" + FormatRemaining(p.Remaining)
	case phase.Done:
		return ">DONE"
	default:
		return ">----"
	}
}

// FormatRemaining renders a remaining span as truncated whole minutes, or
// as whole seconds when under a minute.
func FormatRemaining(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d/time.Minute))
	}
	return fmt.Sprintf("%ds", int(d/time.Second))
}
