package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pomo-cli/pomo/internal/domain"
	"gopkg.in/yaml.v3"
)

// scheduleRecord is the on-disk shape of the config file. The field names
// are a compatibility contract with hand-edited files; durations are whole
// minutes.
type scheduleRecord struct {
	Count    int `yaml:"count"`
	Duration int `yaml:"duration"`
	Rest     int `yaml:"rest"`
}

type yamlScheduleRepo struct {
	path string
	obs  Observer
}

// NewYAMLScheduleRepo creates a ScheduleRepo backed by the YAML file at
// path. Swallowed load failures are reported to obs.
func NewYAMLScheduleRepo(path string, obs Observer) ScheduleRepo {
	return &yamlScheduleRepo{path: path, obs: obs}
}

func (r *yamlScheduleRepo) Load(ctx context.Context) domain.Schedule {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.obs.OnLoadFallback(LoadFallbackEvent{Record: "config", Path: r.path, Reason: err})
		}
		return domain.DefaultSchedule()
	}

	var rec scheduleRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		r.obs.OnLoadFallback(LoadFallbackEvent{Record: "config", Path: r.path, Reason: err})
		return domain.DefaultSchedule()
	}

	// Values are taken as-is; the defaults, not validation, define the
	// baseline behavior.
	return domain.Schedule{
		Work:   time.Duration(rec.Duration) * time.Minute,
		Rest:   time.Duration(rec.Rest) * time.Minute,
		Repeat: rec.Count,
	}
}

func (r *yamlScheduleRepo) Write(ctx context.Context, s domain.Schedule) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	rec := scheduleRecord{
		Count:    s.Repeat,
		Duration: int(s.Work / time.Minute),
		Rest:     int(s.Rest / time.Minute),
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (r *yamlScheduleRepo) Path() string {
	return r.path
}
