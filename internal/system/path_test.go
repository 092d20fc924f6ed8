package system

import (
	"slices"
	"testing"

	"mrogue/internal/grid"
)

func checkPath(t *testing.T, oracle Walkability, path []grid.Pos, from, to grid.Pos) {
	t.Helper()
	if path[0] != from || path[len(path)-1] != to {
		t.Fatalf("path %v does not run %v -> %v", path, from, to)
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].Manhattan(path[i]) != 1 {
			t.Fatalf("step %d: %v -> %v is not one cardinal step", i, path[i-1], path[i])
		}
		if !oracle.IsWalkable(path[i]) {
			t.Fatalf("step %d: %v is not walkable", i, path[i])
		}
	}
}

func TestFindPathOpenGround(t *testing.T) {
	path, ok := FindPath(open, pos(0, 0), pos(3, 4))
	if !ok {
		t.Fatal("expected a path on open ground")
	}
	if len(path) != 8 {
		t.Fatalf("len(path) = %d, want 8 (Manhattan 7 + 1)", len(path))
	}
	checkPath(t, open, path, pos(0, 0), pos(3, 4))
}

func TestFindPathSameCell(t *testing.T) {
	path, ok := FindPath(open, pos(2, 2), pos(2, 2))
	if !ok || len(path) != 1 || path[0] != pos(2, 2) {
		t.Fatalf("FindPath to self = %v, %v", path, ok)
	}
}

func TestFindPathUnwalkableGoal(t *testing.T) {
	if path, ok := FindPath(walls(pos(5, 5)), pos(0, 0), pos(5, 5)); ok || path != nil {
		t.Fatalf("walled goal should have no path, got %v", path)
	}
}

func TestFindPathEnclosedGoal(t *testing.T) {
	goal := pos(4, 0)
	oracle := walls(pos(3, 0), pos(5, 0), pos(4, 1), pos(4, -1))
	if _, ok := FindPath(oracle, pos(0, 0), goal); ok {
		t.Fatal("goal surrounded by walls should be unreachable")
	}
}

func TestFindPathDetour(t *testing.T) {
	// Wall from (2,-3) to (2,3) between start and goal.
	var cells []grid.Pos
	for y := int32(-3); y <= 3; y++ {
		cells = append(cells, pos(2, y))
	}
	// Bound the search so the frontier is finite.
	blocked := walls(cells...)
	oracle := WalkFunc(func(p grid.Pos) bool {
		return p.X >= -10 && p.X <= 10 && p.Y >= -10 && p.Y <= 10 && blocked.IsWalkable(p)
	})

	path, ok := FindPath(oracle, pos(0, 0), pos(4, 0))
	if !ok {
		t.Fatal("expected a path around the wall")
	}
	checkPath(t, oracle, path, pos(0, 0), pos(4, 0))
	// Around the end of the wall: 4 across + 4 up + 4 down.
	if len(path) != 13 {
		t.Fatalf("len(path) = %d, want 13", len(path))
	}
}

func TestFindPathIsDeterministic(t *testing.T) {
	first, _ := FindPath(open, pos(-3, 2), pos(6, -5))
	for range 5 {
		again, _ := FindPath(open, pos(-3, 2), pos(6, -5))
		if !slices.Equal(first, again) {
			t.Fatalf("paths differ between runs:\n%v\n%v", first, again)
		}
	}
}

func TestFindWorldPath(t *testing.T) {
	const tile = 32
	path, ok := FindWorldPath(open, grid.Vec2{X: 5, Y: 5}, grid.Vec2{X: 70, Y: 5}, tile)
	if !ok {
		t.Fatal("expected a path")
	}
	want := []grid.Vec2{{X: 0, Y: 0}, {X: 32, Y: 0}, {X: 64, Y: 0}}
	if !slices.Equal(path, want) {
		t.Fatalf("world path = %v, want %v", path, want)
	}
}
