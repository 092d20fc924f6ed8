// Package config loads simulation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"mrogue/internal/component"
	"mrogue/internal/gamemap"
	"mrogue/internal/generate"

	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables. Zero values in a YAML file override the
// defaults, so omit a key to keep its default.
type Config struct {
	Seed         uint32  `yaml:"seed"`
	TileSize     float64 `yaml:"tile_size"`
	TransitTicks int     `yaml:"transit_ticks"`

	Chunk    ChunkConfig    `yaml:"chunk"`
	Player   PlayerConfig   `yaml:"player"`
	Wanderer WandererConfig `yaml:"wanderer"`
	Log      LogConfig      `yaml:"log"`
}

type ChunkConfig struct {
	Size              int     `yaml:"size"`
	ObstacleChance    float64 `yaml:"obstacle_chance"`
	SpawnRadius       int     `yaml:"spawn_radius"`
	DespawnRadius     float64 `yaml:"despawn_radius"`
	Terrain           string  `yaml:"terrain"`
	WanderersPerChunk int     `yaml:"wanderers_per_chunk"`
}

type PlayerConfig struct {
	ActionsPerTurn uint32 `yaml:"actions_per_turn"`
	ViewRadius     int    `yaml:"view_radius"`
}

type WandererConfig struct {
	ActionsPerTurn uint32 `yaml:"actions_per_turn"`
	Behavior       string `yaml:"behavior"`
	SightRange     int    `yaml:"sight_range"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the stock settings: 8×8 chunks of 32-unit tiles, 20%
// walls, a ±2 chunk load square.
func Default() Config {
	return Config{
		Seed:         1,
		TileSize:     32,
		TransitTicks: 4,
		Chunk: ChunkConfig{
			Size:              8,
			ObstacleChance:    0.2,
			SpawnRadius:       2,
			DespawnRadius:     3,
			Terrain:           generate.TerrainSeeded.String(),
			WanderersPerChunk: 1,
		},
		Player: PlayerConfig{
			ActionsPerTurn: 1,
			ViewRadius:     8,
		},
		Wanderer: WandererConfig{
			ActionsPerTurn: 1,
			Behavior:       component.BehaviorWander.String(),
			SightRange:     6,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate clamps values the simulation cannot run with and returns one
// warning per change. Zero actions per turn and zero view radius are kept.
func (c *Config) Validate() []string {
	var warn []string
	fix := func(format string, args ...any) {
		warn = append(warn, fmt.Sprintf(format, args...))
	}

	if c.TileSize <= 0 {
		fix("tile_size %v must be positive, using 32", c.TileSize)
		c.TileSize = 32
	}
	if c.TransitTicks < 0 {
		fix("transit_ticks %d is negative, using 0", c.TransitTicks)
		c.TransitTicks = 0
	}
	if c.Chunk.Size < 1 {
		fix("chunk.size %d must be at least 1, using 1", c.Chunk.Size)
		c.Chunk.Size = 1
	}
	if c.Chunk.ObstacleChance < 0 || c.Chunk.ObstacleChance > 1 {
		clamped := min(max(c.Chunk.ObstacleChance, 0), 1)
		fix("chunk.obstacle_chance %v outside [0,1], using %v", c.Chunk.ObstacleChance, clamped)
		c.Chunk.ObstacleChance = clamped
	}
	if c.Chunk.SpawnRadius < 0 {
		fix("chunk.spawn_radius %d is negative, using 0", c.Chunk.SpawnRadius)
		c.Chunk.SpawnRadius = 0
	}
	if floor := gamemap.MinDespawnRadius(c.Chunk.SpawnRadius); c.Chunk.DespawnRadius < floor {
		fix("chunk.despawn_radius %v is inside the spawn square, using %.3f", c.Chunk.DespawnRadius, floor)
		c.Chunk.DespawnRadius = floor
	}
	if c.Chunk.Terrain != generate.TerrainSeeded.String() && c.Chunk.Terrain != generate.TerrainFresh.String() {
		fix("chunk.terrain %q unknown, using %q", c.Chunk.Terrain, generate.TerrainSeeded.String())
		c.Chunk.Terrain = generate.TerrainSeeded.String()
	}
	if c.Chunk.WanderersPerChunk < 0 {
		fix("chunk.wanderers_per_chunk %d is negative, using 0", c.Chunk.WanderersPerChunk)
		c.Chunk.WanderersPerChunk = 0
	}
	if c.Player.ViewRadius < 0 {
		fix("player.view_radius %d is negative, using 0", c.Player.ViewRadius)
		c.Player.ViewRadius = 0
	}
	if c.Wanderer.SightRange < 0 {
		fix("wanderer.sight_range %d is negative, using 0", c.Wanderer.SightRange)
		c.Wanderer.SightRange = 0
	}
	if b := component.ParseBehavior(c.Wanderer.Behavior); b.String() != c.Wanderer.Behavior {
		fix("wanderer.behavior %q unknown, using %q", c.Wanderer.Behavior, b.String())
		c.Wanderer.Behavior = b.String()
	}
	return warn
}

// TerrainMode returns the parsed chunk.terrain setting.
func (c *Config) TerrainMode() generate.TerrainMode {
	return generate.ParseTerrainMode(c.Chunk.Terrain)
}

// Behavior returns the parsed wanderer.behavior setting.
func (c *Config) Behavior() component.AIBehavior {
	return component.ParseBehavior(c.Wanderer.Behavior)
}
