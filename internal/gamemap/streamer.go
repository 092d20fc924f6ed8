package gamemap

import (
	"math"

	"mrogue/internal/grid"
	"mrogue/internal/logger"

	"github.com/sirupsen/logrus"
)

// ChunkSource produces the terrain for a chunk coordinate the first time the
// streamer needs it.
type ChunkSource interface {
	Generate(cc ChunkCoord) *Chunk
}

// SyncResult lists the chunks one Sync call loaded and unloaded, each sorted
// by (Y, X).
type SyncResult struct {
	Spawned   []ChunkCoord
	Despawned []ChunkCoord
}

// Changed reports whether the sync touched the store at all.
func (r SyncResult) Changed() bool {
	return len(r.Spawned) > 0 || len(r.Despawned) > 0
}

// Streamer keeps the store populated around a moving anchor.
//
// Chunks within SpawnRadius chunks of the anchor's chunk (a square
// neighbourhood) are generated when missing. A loaded chunk is dropped once
// the straight-line distance between its centre and the anchor chunk's
// centre exceeds DespawnRadius chunk widths. Distances are taken from the
// anchor's chunk rather than the anchor cell, so moving inside one chunk
// never changes the loaded set.
type Streamer struct {
	store         *Store
	source        ChunkSource
	spawnRadius   int
	despawnRadius float64

	// OnSpawn runs after a chunk is inserted; OnDespawn after it is removed.
	OnSpawn   func(*Chunk)
	OnDespawn func(*Chunk)
}

// MinDespawnRadius is the smallest despawn radius that never unloads a chunk
// the same sync just spawned: the centre distance of the spawn square's corner.
func MinDespawnRadius(spawnRadius int) float64 {
	return float64(spawnRadius) * math.Sqrt2
}

// NewStreamer creates a streamer over store. A despawn radius below
// MinDespawnRadius(spawnRadius) is raised to it.
func NewStreamer(store *Store, source ChunkSource, spawnRadius int, despawnRadius float64) *Streamer {
	spawnRadius = max(spawnRadius, 0)
	if floor := MinDespawnRadius(spawnRadius); despawnRadius < floor {
		logger.Log.WithFields(logrus.Fields{
			"component": "streamer",
			"requested": despawnRadius,
			"raised_to": floor,
		}).Warn("despawn radius below spawn extent")
		despawnRadius = floor
	}
	return &Streamer{
		store:         store,
		source:        source,
		spawnRadius:   spawnRadius,
		despawnRadius: despawnRadius,
	}
}

// Store returns the chunk store the streamer maintains.
func (s *Streamer) Store() *Store { return s.store }

// SpawnRadius returns the spawn neighbourhood half-width in chunks.
func (s *Streamer) SpawnRadius() int { return s.spawnRadius }

// DespawnRadius returns the despawn distance in chunk widths.
func (s *Streamer) DespawnRadius() float64 { return s.despawnRadius }

// Sync loads and unloads chunks for an anchor at grid position anchor.
func (s *Streamer) Sync(anchor grid.Pos) SyncResult {
	center := ChunkOf(anchor, s.store.ChunkSize())
	var res SyncResult

	for _, cc := range s.store.Coords() {
		if !s.outOfRange(center, cc) {
			continue
		}
		c := s.store.Remove(cc)
		res.Despawned = append(res.Despawned, cc)
		if s.OnDespawn != nil && c != nil {
			s.OnDespawn(c)
		}
	}

	r := int32(s.spawnRadius)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			cc := ChunkCoord{X: center.X + dx, Y: center.Y + dy}
			if s.store.Has(cc) {
				continue
			}
			c := s.source.Generate(cc)
			s.store.Insert(c)
			res.Spawned = append(res.Spawned, cc)
			if s.OnSpawn != nil {
				s.OnSpawn(c)
			}
		}
	}

	if res.Changed() {
		logger.Log.WithFields(logrus.Fields{
			"component": "streamer",
			"anchor":    anchor,
			"chunk":     center,
			"spawned":   len(res.Spawned),
			"despawned": len(res.Despawned),
			"loaded":    s.store.Len(),
		}).Debug("chunks streamed")
	}
	return res
}

// InRange reports whether cc would be kept for an anchor in chunk center.
func (s *Streamer) InRange(center, cc ChunkCoord) bool {
	return !s.outOfRange(center, cc)
}

func (s *Streamer) outOfRange(center, cc ChunkCoord) bool {
	dx := float64(cc.X - center.X)
	dy := float64(cc.Y - center.Y)
	// Compared in chunk widths; scaling both sides by the chunk's world span
	// gives the same result as comparing world distances.
	return dx*dx+dy*dy > s.despawnRadius*s.despawnRadius+1e-9
}
