package gamemap

import (
	"slices"
	"testing"

	"mrogue/internal/grid"
)

// countingSource generates floor chunks and counts how often each coordinate
// was generated.
type countingSource struct {
	size      int
	generated map[ChunkCoord]int
}

func newCountingSource(size int) *countingSource {
	return &countingSource{size: size, generated: make(map[ChunkCoord]int)}
}

func (s *countingSource) Generate(cc ChunkCoord) *Chunk {
	s.generated[cc]++
	return floorChunk(cc, s.size)
}

func newTestStreamer() (*Streamer, *countingSource) {
	src := newCountingSource(10)
	return NewStreamer(NewStore(10), src, 2, 3.5), src
}

func TestSyncSpawnsNeighbourhood(t *testing.T) {
	st, _ := newTestStreamer()
	res := st.Sync(grid.Pos{X: 5, Y: 5})
	if len(res.Spawned) != 25 {
		t.Fatalf("spawned %d chunks, want 25", len(res.Spawned))
	}
	if len(res.Despawned) != 0 {
		t.Fatalf("despawned %d chunks on first sync", len(res.Despawned))
	}
	for dy := int32(-2); dy <= 2; dy++ {
		for dx := int32(-2); dx <= 2; dx++ {
			if !st.Store().Has(ChunkCoord{dx, dy}) {
				t.Errorf("chunk (%d,%d) not loaded", dx, dy)
			}
		}
	}
}

func TestSyncWithinChunkIsNoop(t *testing.T) {
	st, src := newTestStreamer()
	st.Sync(grid.Pos{X: 5, Y: 5})
	res := st.Sync(grid.Pos{X: 6, Y: 5})
	if res.Changed() {
		t.Fatalf("moving inside a chunk changed the store: %+v", res)
	}
	res = st.Sync(grid.Pos{X: 9, Y: 0})
	if res.Changed() {
		t.Fatalf("moving to the chunk edge changed the store: %+v", res)
	}
	for cc, n := range src.generated {
		if n != 1 {
			t.Errorf("chunk %v generated %d times", cc, n)
		}
	}
}

func TestSyncCrossingBoundary(t *testing.T) {
	st, _ := newTestStreamer()
	st.Sync(grid.Pos{X: 9, Y: 5})
	res := st.Sync(grid.Pos{X: 10, Y: 5})

	var wantSpawned []ChunkCoord
	for dy := int32(-2); dy <= 2; dy++ {
		wantSpawned = append(wantSpawned, ChunkCoord{3, dy})
	}
	SortCoords(wantSpawned)
	if !slices.Equal(res.Spawned, wantSpawned) {
		t.Errorf("spawned %v, want %v", res.Spawned, wantSpawned)
	}

	// From chunk (1,0) the (-2,±2) corners are sqrt(13) ≈ 3.6 > 3.5 away;
	// (-2,±1) at sqrt(10) ≈ 3.16 stay.
	wantDespawned := []ChunkCoord{{-2, -2}, {-2, 2}}
	if !slices.Equal(res.Despawned, wantDespawned) {
		t.Errorf("despawned %v, want %v", res.Despawned, wantDespawned)
	}
	if st.Store().Len() != 28 {
		t.Errorf("loaded %d chunks, want 28", st.Store().Len())
	}
}

func TestSyncNeverDespawnsFreshChunks(t *testing.T) {
	src := newCountingSource(4)
	// 1.0 is below the hysteresis floor for radius 2 and must be raised.
	st := NewStreamer(NewStore(4), src, 2, 1.0)
	if st.DespawnRadius() < MinDespawnRadius(2) {
		t.Fatalf("despawn radius %v not raised to %v", st.DespawnRadius(), MinDespawnRadius(2))
	}
	path := []grid.Pos{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 8, Y: 4}, {X: 8, Y: 8}, {X: -4, Y: -4}}
	for _, p := range path {
		res := st.Sync(p)
		for _, sp := range res.Spawned {
			if slices.Contains(res.Despawned, sp) {
				t.Fatalf("chunk %v spawned and despawned in one sync", sp)
			}
		}
		if again := st.Sync(p); again.Changed() {
			t.Fatalf("second sync at %v changed the store: %+v", p, again)
		}
	}
}

func TestSyncHooks(t *testing.T) {
	st, _ := newTestStreamer()
	var spawned, despawned int
	st.OnSpawn = func(c *Chunk) { spawned++ }
	st.OnDespawn = func(c *Chunk) { despawned++ }

	st.Sync(grid.Pos{X: 0, Y: 0})
	st.Sync(grid.Pos{X: 100, Y: 0})
	if spawned != 50 {
		t.Errorf("OnSpawn ran %d times, want 50", spawned)
	}
	if despawned != 25 {
		t.Errorf("OnDespawn ran %d times, want 25", despawned)
	}
}
