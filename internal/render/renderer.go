package render

import (
	"slices"

	"mrogue/internal/actor"
	"mrogue/internal/component"
	"mrogue/internal/gamemap"
	"mrogue/internal/grid"
	"mrogue/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 3

// Scene is everything one frame draws.
type Scene struct {
	Store    *gamemap.Store
	Actors   *actor.Table
	Fog      *system.FogOfWar
	View     *component.FieldOfView // the player's view; nil draws nothing as visible
	Focus    grid.Vec2              // world position the camera follows
	TileSize float64
	Reveal   bool // draw all loaded terrain and actors regardless of fog
}

// Renderer draws the world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  TileTheme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme TileTheme) *Renderer {
	r := &Renderer{screen: screen, theme: theme}
	r.camera = NewCamera(0, 0, 0, 0)
	r.Resize()
	return r
}

// Resize refits the viewport to the screen.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 0)
}

// Camera exposes the viewport, mainly for tests.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame clears the screen and renders terrain then actors. The caller
// draws the HUD and calls Show.
func (r *Renderer) DrawFrame(sc Scene) {
	r.screen.Clear()
	r.camera.Follow(sc.Focus, sc.TileSize)
	r.drawMap(sc)
	r.drawActors(sc)
}

func (r *Renderer) state(sc Scene, p grid.Pos) system.FogState {
	if sc.Reveal {
		return system.FogVisible
	}
	return sc.Fog.State(p, sc.View)
}

// drawMap walks the viewport rather than the store, so cost follows screen
// size and not the number of loaded chunks.
func (r *Renderer) drawMap(sc Scene) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for sy := 0; sy < r.camera.ViewHeight; sy++ {
		for sx := 0; sx+1 < r.camera.ViewWidth; sx += 2 {
			wx, wy := r.camera.ScreenToWorld(sx, sy)
			p := grid.Pos{X: int32(wx), Y: int32(wy)}
			tile, loaded := sc.Store.TileAt(p)
			if !loaded {
				continue
			}
			var glyph string
			switch r.state(sc, p) {
			case system.FogVisible:
				glyph = r.theme.Floor
				if tile.Kind == gamemap.TileWall {
					glyph = r.theme.Wall
				}
			case system.FogRemembered:
				glyph = r.theme.DimFloor
				if tile.Kind == gamemap.TileWall {
					glyph = r.theme.DimWall
				}
			default:
				continue
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

type drawnActor struct {
	x, y int
	rend component.Renderable
}

// drawActors renders actors in view at their in-transit position, ordered by
// RenderOrder.
func (r *Renderer) drawActors(sc Scene) {
	var list []drawnActor
	sc.Actors.Each(func(a *actor.Actor) {
		x, y := nearestCell(a.Transit.World, sc.TileSize)
		cell := grid.Pos{X: int32(x), Y: int32(y)}
		if !a.IsPlayer() && r.state(sc, cell) != system.FogVisible {
			return
		}
		list = append(list, drawnActor{x: x, y: y, rend: a.Render})
	})

	// Lower render order is drawn first, i.e. behind.
	slices.SortStableFunc(list, func(a, b drawnActor) int {
		return a.rend.RenderOrder - b.rend.RenderOrder
	})

	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(d.x, d.y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(d.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, d.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs still take a full cell.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
