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

// sessionRecord is the on-disk shape of the state file. started_at is
// integer seconds since epoch and is omitted entirely when no pomodoro is
// running.
type sessionRecord struct {
	StartedAt *int64 `yaml:"started_at,omitempty"`
}

type yamlSessionRepo struct {
	path string
	obs  Observer
}

// NewYAMLSessionRepo creates a SessionRepo backed by the YAML file at
// path. Swallowed load failures are reported to obs.
func NewYAMLSessionRepo(path string, obs Observer) SessionRepo {
	return &yamlSessionRepo{path: path, obs: obs}
}

func (r *yamlSessionRepo) Load(ctx context.Context) domain.Session {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.obs.OnLoadFallback(LoadFallbackEvent{Record: "state", Path: r.path, Reason: err})
		}
		return domain.Session{}
	}

	var rec sessionRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		r.obs.OnLoadFallback(LoadFallbackEvent{Record: "state", Path: r.path, Reason: err})
		return domain.Session{}
	}

	var startedAt *time.Time
	if rec.StartedAt != nil {
		t := time.Unix(*rec.StartedAt, 0).UTC()
		startedAt = &t
	}
	return domain.Session{StartedAt: startedAt}
}

func (r *yamlSessionRepo) Save(ctx context.Context, s domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	var rec sessionRecord
	if s.StartedAt != nil {
		sec := s.StartedAt.Unix()
		rec.StartedAt = &sec
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
