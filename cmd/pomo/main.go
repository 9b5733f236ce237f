package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pomo-cli/pomo/internal/cli"
	"github.com/pomo-cli/pomo/internal/cli/formatter"
	"github.com/pomo-cli/pomo/internal/paths"
	"github.com/pomo-cli/pomo/internal/repository"
	"github.com/pomo-cli/pomo/internal/service"
)

const appName = "pomo"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := filepath.Join(paths.ConfigDir(appName), "config.yaml")
	statePath := filepath.Join(paths.DataDir(appName), "state.yaml")

	// Swallowed load fallbacks go to stderr; stdout stays reserved for
	// the rendered status line.
	obs := repository.NewLogObserver(os.Stderr)
	schedules := repository.NewYAMLScheduleRepo(configPath, obs)
	sessions := repository.NewYAMLSessionRepo(statePath, obs)

	clock := service.SystemClock()
	app := &cli.App{
		Sessions:  service.NewSessionService(sessions, clock),
		Status:    service.NewStatusService(schedules, sessions, clock),
		Schedules: service.NewScheduleService(schedules),
		Mode:      formatter.ModeFull,
	}

	// Status bars read stdout through a pipe; give them the compact form.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		app.Mode = formatter.ModeCompact
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
