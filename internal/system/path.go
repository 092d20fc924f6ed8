package system

import (
	"container/heap"
	"slices"

	"mrogue/internal/grid"
)

// FindPath returns a shortest 4-connected path from `from` to `to`, both
// endpoints included. Every step costs 1 and the heuristic is Manhattan
// distance. Neighbours are expanded in grid.Cardinals order; among equal f
// the node with lower h wins, then the one discovered first, so repeated
// calls on the same terrain return the same path.
//
// The start cell need not be walkable. An unwalkable goal or an exhausted
// frontier returns nil, false.
func FindPath(oracle Walkability, from, to grid.Pos) ([]grid.Pos, bool) {
	if from == to {
		return []grid.Pos{from}, true
	}
	if !oracle.IsWalkable(to) {
		return nil, false
	}

	gScore := map[grid.Pos]int{from: 0}
	cameFrom := make(map[grid.Pos]grid.Pos)
	closed := make(map[grid.Pos]bool)

	open := &openSet{}
	seq := 0
	push := func(p grid.Pos, g int) {
		heap.Push(open, &pathNode{pos: p, g: g, h: p.Manhattan(to), seq: seq})
		seq++
	}
	push(from, 0)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if closed[cur.pos] {
			continue // stale entry superseded by a cheaper one
		}
		if cur.pos == to {
			return reconstruct(cameFrom, from, to), true
		}
		closed[cur.pos] = true

		for _, d := range grid.Cardinals {
			next := cur.pos.Add(d)
			if closed[next] || !oracle.IsWalkable(next) {
				continue
			}
			g := cur.g + 1
			if old, seen := gScore[next]; seen && g >= old {
				continue
			}
			gScore[next] = g
			cameFrom[next] = cur.pos
			push(next, g)
		}
	}
	return nil, false
}

// FindWorldPath runs FindPath between the cells containing two world
// positions and returns the path as world coordinates of cell origins.
func FindWorldPath(oracle Walkability, from, to grid.Vec2, tileSize float64) ([]grid.Vec2, bool) {
	cells, ok := FindPath(oracle, grid.FromWorld(from, tileSize), grid.FromWorld(to, tileSize))
	if !ok {
		return nil, false
	}
	out := make([]grid.Vec2, len(cells))
	for i, p := range cells {
		out[i] = p.ToWorld(tileSize)
	}
	return out, true
}

func reconstruct(cameFrom map[grid.Pos]grid.Pos, from, to grid.Pos) []grid.Pos {
	path := []grid.Pos{to}
	for p := to; p != from; {
		p = cameFrom[p]
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}

type pathNode struct {
	pos   grid.Pos
	g, h  int
	seq   int
	index int
}

// openSet is a min-heap of frontier nodes ordered by (f, h, seq).
type openSet []*pathNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	a, b := s[i], s[j]
	if fa, fb := a.g+a.h, b.g+b.h; fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}
