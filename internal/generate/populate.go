package generate

import (
	"math/rand"

	"mrogue/internal/gamemap"
	"mrogue/internal/grid"
)

// SpawnPoints picks up to n distinct floor cells of c for actors to start on.
// The choice depends only on the chunk's coordinate and seed.
func SpawnPoints(c *gamemap.Chunk, n int) []grid.Pos {
	if n <= 0 {
		return nil
	}
	var floors []grid.Pos
	for ly := 0; ly < c.Size; ly++ {
		for lx := 0; lx < c.Size; lx++ {
			if c.At(lx, ly).Walkable {
				floors = append(floors, c.WorldPos(lx, ly))
			}
		}
	}
	if len(floors) == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(int64(hash2(c.Seed, c.Coord.X, c.Coord.Y))))
	rng.Shuffle(len(floors), func(i, j int) {
		floors[i], floors[j] = floors[j], floors[i]
	})
	return floors[:min(n, len(floors))]
}
