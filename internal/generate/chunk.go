package generate

import (
	"mrogue/internal/gamemap"
)

// TerrainMode selects what happens when a chunk is generated a second time.
type TerrainMode uint8

const (
	// TerrainSeeded derives every cell from (seed, world cell): a chunk that
	// is unloaded and later reloaded comes back identical.
	TerrainSeeded TerrainMode = iota
	// TerrainFresh salts the hash with a per-generation epoch, so revisited
	// terrain is rolled again.
	TerrainFresh
)

// ParseTerrainMode maps a config string to a mode. Unknown values fall back
// to TerrainSeeded.
func ParseTerrainMode(s string) TerrainMode {
	if s == "fresh" {
		return TerrainFresh
	}
	return TerrainSeeded
}

func (m TerrainMode) String() string {
	if m == TerrainFresh {
		return "fresh"
	}
	return "seeded"
}

// Classifier decides the terrain of one cell. It must be pure in
// (chunk coordinate, local cell).
type Classifier func(cc gamemap.ChunkCoord, lx, ly int) gamemap.TileKind

// HashClassifier marks a cell as wall with probability chance, independently
// per cell, from a coordinate hash salted with salt.
func HashClassifier(salt uint32, chance float64, size int) Classifier {
	return func(cc gamemap.ChunkCoord, lx, ly int) gamemap.TileKind {
		o := cc.Origin(size)
		if unit(hash2(salt, o.X+int32(lx), o.Y+int32(ly))) < chance {
			return gamemap.TileWall
		}
		return gamemap.TileFloor
	}
}

// Generator produces chunks for the streamer. It implements
// gamemap.ChunkSource.
type Generator struct {
	size      int
	seed      uint32
	chance    float64
	mode      TerrainMode
	classify  Classifier
	epoch     uint32
	generated int
}

// NewGenerator creates a hash-driven generator.
func NewGenerator(size int, seed uint32, obstacleChance float64, mode TerrainMode) *Generator {
	return &Generator{size: size, seed: seed, chance: obstacleChance, mode: mode}
}

// WithClassifier replaces the hash classifier, e.g. with a hand-authored
// layout. The generator's mode no longer affects terrain, only chunk seeds.
func (g *Generator) WithClassifier(c Classifier) *Generator {
	g.classify = c
	return g
}

// Mode returns the generator's terrain mode.
func (g *Generator) Mode() TerrainMode { return g.mode }

// Generated returns how many chunks have been produced so far.
func (g *Generator) Generated() int { return g.generated }

// Generate builds the chunk at cc.
func (g *Generator) Generate(cc gamemap.ChunkCoord) *gamemap.Chunk {
	salt := g.seed
	if g.mode == TerrainFresh {
		g.epoch++
		salt = hash32(g.seed ^ g.epoch*0x9e3779b1)
	}
	classify := g.classify
	if classify == nil {
		classify = HashClassifier(salt, g.chance, g.size)
	}

	c := gamemap.NewChunk(cc, g.size)
	c.Seed = salt
	for ly := 0; ly < g.size; ly++ {
		for lx := 0; lx < g.size; lx++ {
			c.Set(lx, ly, gamemap.MakeTile(classify(cc, lx, ly)))
		}
	}
	g.generated++
	return c
}
