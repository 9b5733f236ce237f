package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pomo-cli/pomo/internal/repository"
)

var testNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

// newTestRepos builds YAML repositories rooted in a fresh temp dir.
func newTestRepos(t *testing.T) (repository.ScheduleRepo, repository.SessionRepo) {
	t.Helper()
	dir := t.TempDir()
	schedules := repository.NewYAMLScheduleRepo(filepath.Join(dir, "config.yaml"), repository.NoopObserver{})
	sessions := repository.NewYAMLSessionRepo(filepath.Join(dir, "state.yaml"), repository.NoopObserver{})
	return schedules, sessions
}
