package game

import (
	"fmt"
	"time"

	"mrogue/internal/config"
	"mrogue/internal/logger"
	"mrogue/internal/render"
	"mrogue/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// TickInterval is the wall-clock length of one simulation tick.
const TickInterval = 40 * time.Millisecond

// Game drives a Sim from a tcell screen: keys become player input, a clock
// advances ticks, and each event redraws the frame.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sim      *Sim
	runs     *RunLogStore
	started  time.Time
	pending  *Input
	reveal   bool
	message  string
	log      *logrus.Entry
}

// New creates a Game on the process terminal.
func New(cfg config.Config, runs *RunLogStore) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, runs), nil
}

// NewWithScreen creates a Game on an already initialised screen, e.g. one
// backed by an SSH session.
func NewWithScreen(screen tcell.Screen, cfg config.Config, runs *RunLogStore) *Game {
	sim := NewSim(cfg)
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, render.ThemeFor(cfg.Seed)),
		sim:      sim,
		runs:     runs,
		started:  time.Now(),
		message:  "Move with WASD, arrows or hjkl. '.' waits, ` reveals the map, q quits.",
		log:      logger.Log.WithField("component", "game"),
	}
}

// Sim returns the simulation the game drives.
func (g *Game) Sim() *Sim { return g.sim }

// Run is the main loop. It returns when the player quits or the screen goes
// away, after saving the run log.
func (g *Game) Run() RunLog {
	defer g.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	go g.clock(done)

	for {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return g.finish()
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventInterrupt:
			g.step()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return g.finish()
			}
		}
	}
}

// clock posts an interrupt every TickInterval until done is closed.
func (g *Game) clock(done <-chan struct{}) {
	t := time.NewTicker(TickInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			// A full event queue just drops this tick.
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// handleKey applies one key press. It returns false when the player quits.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionToggleReveal:
		g.reveal = !g.reveal
	default:
		if in, ok := actionToInput(action); ok {
			// One buffered input; a newer key replaces an unused one.
			g.pending = &in
		}
	}
	return true
}

// step runs one simulation tick, feeding the buffered input once the player
// can use it.
func (g *Game) step() {
	var in Input
	if g.pending != nil && g.sim.PlayerCanAct() {
		in = *g.pending
		g.pending = nil
	}
	rep := g.sim.Tick(in)
	for _, m := range rep.Moves {
		if p := g.sim.Player(); p == nil || m.Actor != p.ID {
			continue
		}
		switch m.Result {
		case system.MoveBlocked:
			g.message = "Something blocks the way."
		case system.MoveOccupied:
			g.message = "Someone is in the way."
		case system.MoveNoIntent:
			g.message = "You wait."
		default:
			g.message = ""
		}
	}
}

func (g *Game) draw() {
	p := g.sim.Player()
	if p == nil {
		return
	}
	cfg := g.sim.Config()
	g.renderer.DrawFrame(render.Scene{
		Store:    g.sim.Store(),
		Actors:   g.sim.Actors(),
		Fog:      g.sim.Fog(),
		View:     p.FOV,
		Focus:    p.Transit.World,
		TileSize: cfg.TileSize,
		Reveal:   g.reveal,
	})
	g.renderer.DrawHUD(render.Status{
		Phase:      g.sim.Phase(),
		Round:      g.sim.Round(),
		Actions:    p.Turn.ActionsRemaining,
		ActionsMax: p.Turn.ActionsPerTurn,
		Pos:        p.Move.Current,
		Chunks:     g.sim.Store().Len(),
		Actors:     g.sim.Actors().Len(),
		Seen:       g.sim.Fog().Seen(),
		Reveal:     g.reveal,
		Message:    g.message,
	})
}

// finish saves the run log. Persistence failures are logged, never fatal.
func (g *Game) finish() RunLog {
	run := g.sim.RunLog(g.started)
	if err := g.runs.Append(run); err != nil {
		g.log.WithError(err).Warn("run log not saved")
	}
	g.log.WithFields(logrus.Fields{
		"ticks":  run.Ticks,
		"rounds": run.Rounds,
		"seen":   run.TilesSeen,
	}).Info("run finished")
	return run
}
