package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// openTestRunLogStore opens a store under a throwaway app name, or skips when
// the platform has no data directory.
func openTestRunLogStore(t *testing.T) *RunLogStore {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	appName := fmt.Sprintf("mrogue_test_%d", time.Now().UnixNano())
	store, err := OpenRunLogStore(appName)
	if err != nil {
		t.Skipf("no data directory: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store
}

// TestRunLogStoreNilIsSafe verifies the degraded mode used when no data
// directory could be opened.
func TestRunLogStoreNilIsSafe(t *testing.T) {
	var nilStore *RunLogStore
	for _, s := range []*RunLogStore{nilStore, {}} {
		if err := s.Append(RunLog{Ticks: 1}); err != nil {
			t.Fatalf("Append: %v", err)
		}
		runs, err := s.History()
		if err != nil || len(runs) != 0 {
			t.Fatalf("History = %v, %v; want empty", runs, err)
		}
	}
}

// TestRunLogStoreAppend verifies that runs are persisted oldest first.
func TestRunLogStoreAppend(t *testing.T) {
	s := openTestRunLogStore(t)
	for i := range 3 {
		if err := s.Append(RunLog{Seed: 7, Terrain: "seeded", Ticks: i + 1, Duration: time.Minute}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	runs, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Ticks != 1 || runs[2].Ticks != 3 {
		t.Errorf("order = %d..%d, want 1..3", runs[0].Ticks, runs[2].Ticks)
	}
	if runs[1].Duration != time.Minute || runs[1].Terrain != "seeded" {
		t.Errorf("fields not round-tripped: %+v", runs[1])
	}
}

// TestRunLogStoreKeepsNewest verifies that history is capped at MaxRuns.
func TestRunLogStoreKeepsNewest(t *testing.T) {
	s := openTestRunLogStore(t)
	for i := range MaxRuns + 5 {
		if err := s.Append(RunLog{Ticks: i}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	runs, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(runs) != MaxRuns {
		t.Fatalf("got %d runs, want %d", len(runs), MaxRuns)
	}
	if runs[0].Ticks != 5 {
		t.Fatalf("oldest kept = %d, want 5", runs[0].Ticks)
	}
}

// TestSimRunLog verifies that the run log reflects the simulation counters.
func TestSimRunLog(t *testing.T) {
	s := NewSim(openConfig())
	s.Tick(Input{Wait: true})
	s.Tick(Input{})
	run := s.RunLog(time.Now())
	if run.Ticks != 2 || run.Rounds != 1 {
		t.Fatalf("run = %+v, want 2 ticks and 1 round", run)
	}
	if run.ChunksGenerated != s.Store().Len() {
		t.Errorf("ChunksGenerated = %d, want %d", run.ChunksGenerated, s.Store().Len())
	}
	if run.TilesSeen == 0 {
		t.Error("TilesSeen should count the first view")
	}
}

// TestRunLogStoreConcurrentAppend verifies that sessions appending at the
// same time do not lose runs.
func TestRunLogStoreConcurrentAppend(t *testing.T) {
	s := openTestRunLogStore(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Append(RunLog{Ticks: i}); err != nil {
				t.Errorf("Append %d: %v", i, err)
			}
		}()
	}
	wg.Wait()
	runs, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(runs) != 8 {
		t.Fatalf("got %d runs, want 8", len(runs))
	}
}
