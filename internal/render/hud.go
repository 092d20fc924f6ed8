package render

import (
	"fmt"

	"mrogue/internal/grid"
	"mrogue/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the data shown on the HUD.
type Status struct {
	Phase      system.Phase
	Round      int
	Actions    uint32
	ActionsMax uint32
	Pos        grid.Pos
	Chunks     int
	Actors     int
	Seen       int
	Reveal     bool
	Message    string
}

// DrawHUD renders the status bar and last message at the bottom of the screen,
// then shows the frame.
func (r *Renderer) DrawHUD(st Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	line := fmt.Sprintf("%s turn  round %d  actions %d/%d  pos (%d,%d)  chunks %d  actors %d  seen %d",
		st.Phase, st.Round, st.Actions, st.ActionsMax, st.Pos.X, st.Pos.Y, st.Chunks, st.Actors, st.Seen)
	if st.Reveal {
		line += "  [reveal]"
	}
	r.drawText(0, hudY+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if st.Message != "" {
		r.drawText(0, hudY+2, st.Message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
