package game

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/sasha-s/go-deadlock"
	"gopkg.in/yaml.v3"
)

// RunLog records statistics gathered during one session.
type RunLog struct {
	Seed            uint32        `yaml:"seed"`
	Terrain         string        `yaml:"terrain"`
	StartedAt       time.Time     `yaml:"started_at"`
	Duration        time.Duration `yaml:"duration"`
	Ticks           int           `yaml:"ticks"`
	Rounds          int           `yaml:"rounds"`
	MovesAccepted   int           `yaml:"moves_accepted"`
	MovesRejected   int           `yaml:"moves_rejected"`
	ChunksGenerated int           `yaml:"chunks_generated"`
	TilesSeen       int           `yaml:"tiles_seen"`
}

// RunLog summarises the simulation so far.
func (s *Sim) RunLog(started time.Time) RunLog {
	return RunLog{
		Seed:            s.cfg.Seed,
		Terrain:         s.gen.Mode().String(),
		StartedAt:       started,
		Duration:        time.Since(started).Round(time.Second),
		Ticks:           s.stats.Ticks,
		Rounds:          s.sched.Round(),
		MovesAccepted:   s.stats.MovesAccepted,
		MovesRejected:   s.stats.MovesRejected,
		ChunksGenerated: s.gen.Generated(),
		TilesSeen:       s.fog.Seen(),
	}
}

const (
	runsObject   = "runs"
	runsProperty = "history"

	// MaxRuns bounds the stored history; older runs are dropped first.
	MaxRuns = 50
)

// RunLogStore keeps run history in the per-user data directory. A store with
// a nil manager keeps nothing and never fails. It is safe for concurrent use
// by several sessions.
type RunLogStore struct {
	mu   deadlock.Mutex
	data *gdata.Manager
}

// OpenRunLogStore opens the data directory for appName.
func OpenRunLogStore(appName string) (*RunLogStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &RunLogStore{}, fmt.Errorf("open run log store: %w", err)
	}
	return &RunLogStore{data: m}, nil
}

// History returns stored runs, oldest first.
func (s *RunLogStore) History() ([]RunLog, error) {
	if s == nil || s.data == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *RunLogStore) load() ([]RunLog, error) {
	if !s.data.ObjectPropExists(runsObject, runsProperty) {
		return nil, nil
	}
	raw, err := s.data.LoadObjectProp(runsObject, runsProperty)
	if err != nil {
		return nil, fmt.Errorf("load run history: %w", err)
	}
	var runs []RunLog
	if err := yaml.Unmarshal(raw, &runs); err != nil {
		return nil, fmt.Errorf("decode run history: %w", err)
	}
	return runs, nil
}

// Append adds run to the history, keeping the newest MaxRuns entries.
func (s *RunLogStore) Append(run RunLog) error {
	if s == nil || s.data == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	runs, err := s.load()
	if err != nil {
		// Unreadable history is replaced rather than blocking new runs.
		runs = nil
	}
	runs = append(runs, run)
	if len(runs) > MaxRuns {
		runs = runs[len(runs)-MaxRuns:]
	}
	raw, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("encode run history: %w", err)
	}
	if err := s.data.SaveObjectProp(runsObject, runsProperty, raw); err != nil {
		return fmt.Errorf("save run history: %w", err)
	}
	return nil
}
