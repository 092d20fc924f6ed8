package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"mrogue/internal/component"
	"mrogue/internal/generate"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if warn := cfg.Validate(); len(warn) != 0 {
		t.Fatalf("default config produced warnings: %v", warn)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing file should give defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrogue.yaml")
	data := []byte(`
seed: 42
chunk:
  size: 30
  terrain: fresh
player:
  actions_per_turn: 2
wanderer:
  behavior: chase
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Chunk.Size != 30 || cfg.Player.ActionsPerTurn != 2 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.TerrainMode() != generate.TerrainFresh {
		t.Errorf("TerrainMode = %v, want fresh", cfg.TerrainMode())
	}
	if cfg.Behavior() != component.BehaviorChase {
		t.Errorf("Behavior = %v, want chase", cfg.Behavior())
	}
	// Untouched keys keep their defaults.
	if cfg.Player.ViewRadius != Default().Player.ViewRadius {
		t.Errorf("ViewRadius = %d, want default", cfg.Player.ViewRadius)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("chunk: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := Default()
	cfg.Chunk.Size = 0
	cfg.Chunk.ObstacleChance = 1.5
	cfg.Chunk.SpawnRadius = 3
	cfg.Chunk.DespawnRadius = 1
	cfg.Chunk.Terrain = "lava"
	cfg.Player.ViewRadius = -2
	cfg.Wanderer.Behavior = "dance"

	warn := cfg.Validate()
	if len(warn) != 6 {
		t.Fatalf("got %d warnings, want 6: %v", len(warn), warn)
	}
	if cfg.Chunk.Size != 1 {
		t.Errorf("Chunk.Size = %d, want 1", cfg.Chunk.Size)
	}
	if cfg.Chunk.ObstacleChance != 1 {
		t.Errorf("ObstacleChance = %v, want 1", cfg.Chunk.ObstacleChance)
	}
	if want := 3 * math.Sqrt2; math.Abs(cfg.Chunk.DespawnRadius-want) > 1e-9 {
		t.Errorf("DespawnRadius = %v, want %v", cfg.Chunk.DespawnRadius, want)
	}
	if cfg.Chunk.Terrain != "seeded" || cfg.Wanderer.Behavior != "wander" {
		t.Errorf("unknown names not reset: %q %q", cfg.Chunk.Terrain, cfg.Wanderer.Behavior)
	}
	if cfg.Player.ViewRadius != 0 {
		t.Errorf("ViewRadius = %d, want 0", cfg.Player.ViewRadius)
	}
}

func TestValidateKeepsDegenerateValues(t *testing.T) {
	cfg := Default()
	cfg.Player.ActionsPerTurn = 0
	cfg.Player.ViewRadius = 0
	if warn := cfg.Validate(); len(warn) != 0 {
		t.Fatalf("zero actions and zero view radius are valid, got %v", warn)
	}
}
