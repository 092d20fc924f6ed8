package component

import "github.com/gdamore/tcell/v2"

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int
}
