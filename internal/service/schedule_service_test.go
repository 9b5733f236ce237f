package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/repository"
	"github.com/pomo-cli/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WithoutForce_DeclinesToWrite(t *testing.T) {
	ctx := context.Background()
	schedules, _ := newTestRepos(t)
	svc := NewScheduleService(schedules)

	res, err := svc.Init(ctx, false)

	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Equal(t, schedules.Path(), res.Path)
	_, statErr := os.Stat(schedules.Path())
	assert.True(t, os.IsNotExist(statErr), "no file should appear without force")
}

func TestInit_WithoutForce_PreservesExisting(t *testing.T) {
	ctx := context.Background()
	schedules, _ := newTestRepos(t)
	custom := testutil.NewTestSchedule(testutil.WithWork(50*time.Minute), testutil.WithRepeat(2))
	require.NoError(t, schedules.Write(ctx, custom))

	svc := NewScheduleService(schedules)
	res, err := svc.Init(ctx, false)

	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Equal(t, custom, schedules.Load(ctx))
}

func TestInit_Force_WritesDefaults(t *testing.T) {
	ctx := context.Background()
	schedules, _ := newTestRepos(t)
	svc := NewScheduleService(schedules)

	res, err := svc.Init(ctx, true)

	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, schedules.Path(), res.Path)
	assert.Equal(t, domain.DefaultSchedule(), schedules.Load(ctx))
}

func TestInit_Force_OverwritesExisting(t *testing.T) {
	ctx := context.Background()
	schedules, _ := newTestRepos(t)
	require.NoError(t, schedules.Write(ctx, testutil.NewTestSchedule(testutil.WithWork(time.Minute))))

	svc := NewScheduleService(schedules)
	res, err := svc.Init(ctx, true)

	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, domain.DefaultSchedule(), schedules.Load(ctx))
}

func TestInit_Force_WriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	schedules := repository.NewYAMLScheduleRepo(filepath.Join(blocker, "config.yaml"), repository.NoopObserver{})

	svc := NewScheduleService(schedules)
	res, err := svc.Init(ctx, true)

	require.Error(t, err)
	assert.False(t, res.Written)
}
