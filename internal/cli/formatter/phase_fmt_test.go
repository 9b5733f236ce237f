package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/pomo-cli/pomo/internal/phase"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatPhase_Full(t *testing.T) {
	cases := []struct {
		name string
		p    phase.Phase
		want string
	}{
		{"idle", phase.Phase{Kind: phase.Idle}, "no pomodoro running"},
		{"work minutes", phase.Phase{Kind: phase.Work, Remaining: 15 * time.Minute}, "W: 15m"},
		{"work seconds", phase.Phase{Kind: phase.Work, Remaining: 45 * time.Second}, "W: 45s"},
		{"work boundary", phase.Phase{Kind: phase.Work, Remaining: 0}, "W: 0s"},
		{"rest truncates", phase.Phase{Kind: phase.Rest, Remaining: 200 * time.Second}, "R: 3m"},
		{"done", phase.Phase{Kind: phase.Done}, "READY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripANSI(FormatPhase(tc.p, ModeFull)))
		})
	}
}

func TestFormatPhase_Compact(t *testing.T) {
	cases := []struct {
		name string
		p    phase.Phase
		want string
	}{
		{"idle", phase.Phase{Kind: phase.Idle}, ">----"},
		{"work minutes", phase.Phase{Kind: phase.Work, Remaining: 15 * time.Minute}, "W:15m"},
		{"work seconds", phase.Phase{Kind: phase.Work, Remaining: 45 * time.Second}, "W:45s"},
		{"rest truncates", phase.Phase{Kind: phase.Rest, Remaining: 200 * time.Second}, "R:3m"},
		{"done", phase.Phase{Kind: phase.Done}, ">DONE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatPhase(tc.p, ModeCompact)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, stripANSI(got), "compact output must carry no styling")
		})
	}
}

func TestFormatPhase_UnknownModeRendersFull(t *testing.T) {
	p := phase.Phase{Kind: phase.Done}
	assert.Equal(t, "READY", stripANSI(FormatPhase(p, Mode(""))))
}

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{time.Second, "1s"},
		{45 * time.Second, "45s"},
		{59 * time.Second, "59s"},
		{time.Minute, "1m"},
		{61 * time.Second, "1m"},
		{200 * time.Second, "3m"},
		{25 * time.Minute, "25m"},
		{90 * time.Minute, "90m"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatRemaining(tc.d), "d=%s", tc.d)
	}
}
