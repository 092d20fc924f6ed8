package system

import (
	"mrogue/internal/component"
	"mrogue/internal/grid"
	"mrogue/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// ComputeFOV returns every cell visible from observer within a square window
// of half-width radius. Cells are transparent exactly when walkable. Walls
// that line of sight reaches are included. The observer's own cell is always
// visible; radius 0 sees nothing else.
//
// The sweep is restrictive precise-angle shadowcasting (MRPAS): each quadrant
// is scanned as two octants, line by line outward, tracking the angular
// ranges covered by obstacles on earlier lines.
func ComputeFOV(oracle Walkability, observer grid.Pos, radius int) mapset.Set[grid.Pos] {
	visible := mapset.New[grid.Pos]()
	visible.Put(observer)
	if radius <= 0 {
		return visible
	}

	w := newFOVWindow(oracle, observer, radius)
	w.lit[w.index(radius, radius)] = true
	for _, q := range quadrants {
		w.verticalOctant(q[0], q[1])
		w.horizontalOctant(q[0], q[1])
	}

	r := int32(radius)
	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			if w.lit[w.index(x, y)] {
				visible.Put(observer.Offset(int32(x)-r, int32(y)-r))
			}
		}
	}
	return visible
}

// UpdateFOV recomputes fov from observer if the observer moved or the view
// was marked dirty. Reports whether it recomputed.
func UpdateFOV(fov *component.FieldOfView, oracle Walkability, observer grid.Pos) bool {
	if fov == nil || !fov.NeedsUpdate(observer) {
		return false
	}
	fov.Commit(observer, ComputeFOV(oracle, observer, fov.Radius))
	logger.Log.WithFields(logrus.Fields{
		"component":     "fov",
		"observer":      observer,
		"radius":        fov.Radius,
		"visible_tiles": fov.Visible.Size(),
	}).Debug("field of view recomputed")
	return true
}

// quadrant sign pairs (dx, dy).
var quadrants = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// fovWindow is the (2r+1)² neighbourhood of the observer, which sits at
// (radius, radius).
type fovWindow struct {
	radius      int
	size        int
	transparent []bool
	lit         []bool

	// Angular ranges of obstacles seen on previous lines of the current octant.
	startAngle []float64
	endAngle   []float64
}

func newFOVWindow(oracle Walkability, observer grid.Pos, radius int) *fovWindow {
	size := 2*radius + 1
	w := &fovWindow{
		radius:      radius,
		size:        size,
		transparent: make([]bool, size*size),
		lit:         make([]bool, size*size),
	}
	r := int32(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			w.transparent[w.index(x, y)] = oracle.IsWalkable(observer.Offset(int32(x)-r, int32(y)-r))
		}
	}
	return w
}

func (w *fovWindow) index(x, y int) int { return y*w.size + x }

func (w *fovWindow) inside(x, y int) bool {
	return x >= 0 && x < w.size && y >= 0 && y < w.size
}

// open reports whether (x, y) is both lit and transparent, i.e. light passes
// through it onto the next line.
func (w *fovWindow) open(x, y int) bool {
	if !w.inside(x, y) {
		return false
	}
	i := w.index(x, y)
	return w.lit[i] && w.transparent[i]
}

// cell judges one cell of the current line against the obstacles of earlier
// lines. behindX/behindY is the cell directly behind it toward the observer;
// diagX/diagY the diagonal one. Returns visibility and whether the cell
// widened an existing obstacle range.
func (w *fovWindow) cell(x, y, behindX, behindY, diagX, diagY int, start, centre, end float64, obstacles int) (visible, extended bool) {
	if obstacles == 0 {
		return true, false
	}
	if !w.open(behindX, behindY) && !w.open(diagX, diagY) {
		return false, false
	}
	transparent := w.transparent[w.index(x, y)]
	for i := 0; i < obstacles; i++ {
		if start > w.endAngle[i] || end < w.startAngle[i] {
			continue
		}
		if transparent {
			if centre > w.startAngle[i] && centre < w.endAngle[i] {
				return false, extended
			}
			continue
		}
		if start >= w.startAngle[i] && end <= w.endAngle[i] {
			return false, extended
		}
		w.startAngle[i] = min(w.startAngle[i], start)
		w.endAngle[i] = max(w.endAngle[i], end)
		extended = true
	}
	return true, extended
}

// verticalOctant scans lines y = cy ± n, cells from the centre column toward
// the diagonal.
func (w *fovWindow) verticalOctant(dx, dy int) {
	w.startAngle, w.endAngle = w.startAngle[:0], w.endAngle[:0]
	c := w.radius
	minAngle := 0.0
	lastLine := 0

	y := c + dy
	for iteration := 1; iteration <= w.radius && y >= 0 && y < w.size; iteration++ {
		slopesPerCell := 1.0 / float64(iteration)
		half := slopesPerCell * 0.5
		processed := int((minAngle + half) / slopesPerCell)
		minX, maxX := max(0, c-iteration), min(w.size-1, c+iteration)
		done := true

		for x := c + processed*dx; x >= minX && x <= maxX; x += dx {
			centre := float64(processed) * slopesPerCell
			start, end := centre-half, centre+half
			visible, extended := w.cell(x, y, x, y-dy, x-dx, y-dy, start, centre, end, lastLine)
			if visible {
				done = false
				w.lit[w.index(x, y)] = true
				if !w.transparent[w.index(x, y)] {
					if minAngle >= start {
						minAngle = end
						if processed == iteration {
							done = true
						}
					} else if !extended {
						w.startAngle = append(w.startAngle, start)
						w.endAngle = append(w.endAngle, end)
					}
				}
			}
			processed++
		}
		if done {
			return
		}
		lastLine = len(w.startAngle)
		y += dy
	}
}

// horizontalOctant is verticalOctant with the axes swapped: lines are
// columns x = cx ± n.
func (w *fovWindow) horizontalOctant(dx, dy int) {
	w.startAngle, w.endAngle = w.startAngle[:0], w.endAngle[:0]
	c := w.radius
	minAngle := 0.0
	lastLine := 0

	x := c + dx
	for iteration := 1; iteration <= w.radius && x >= 0 && x < w.size; iteration++ {
		slopesPerCell := 1.0 / float64(iteration)
		half := slopesPerCell * 0.5
		processed := int((minAngle + half) / slopesPerCell)
		minY, maxY := max(0, c-iteration), min(w.size-1, c+iteration)
		done := true

		for y := c + processed*dy; y >= minY && y <= maxY; y += dy {
			centre := float64(processed) * slopesPerCell
			start, end := centre-half, centre+half
			visible, extended := w.cell(x, y, x-dx, y, x-dx, y-dy, start, centre, end, lastLine)
			if visible {
				done = false
				w.lit[w.index(x, y)] = true
				if !w.transparent[w.index(x, y)] {
					if minAngle >= start {
						minAngle = end
						if processed == iteration {
							done = true
						}
					} else if !extended {
						w.startAngle = append(w.startAngle, start)
						w.endAngle = append(w.endAngle, end)
					}
				}
			}
			processed++
		}
		if done {
			return
		}
		lastLine = len(w.startAngle)
		x += dx
	}
}
