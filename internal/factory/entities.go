package factory

import (
	"mrogue/internal/actor"
	"mrogue/internal/component"
	"mrogue/internal/config"
	"mrogue/internal/grid"

	"github.com/gdamore/tcell/v2"
)

const (
	PlayerGlyph   = "🧙"
	WandererGlyph = "😈"
)

// NewPlayer creates the player actor on p with a fresh field of view.
func NewPlayer(t *actor.Table, p grid.Pos, cfg config.PlayerConfig, tileSize float64) actor.ID {
	a := actor.Actor{
		Kind: actor.KindPlayer,
		Name: "player",
		Turn: component.NewTurnTaker(cfg.ActionsPerTurn),
		Render: component.Renderable{
			Glyph:       PlayerGlyph,
			FGColor:     tcell.ColorYellow,
			RenderOrder: 10,
		},
		FOV: component.NewFieldOfView(cfg.ViewRadius),
	}
	a.Place(p, tileSize)
	return t.Spawn(a)
}

// NewWanderer creates an environment actor on p.
func NewWanderer(t *actor.Table, p grid.Pos, cfg config.WandererConfig, tileSize float64) actor.ID {
	a := actor.Actor{
		Kind: actor.KindWanderer,
		Name: "wanderer",
		Turn: component.NewTurnTaker(cfg.ActionsPerTurn),
		Render: component.Renderable{
			Glyph:       WandererGlyph,
			FGColor:     tcell.ColorRed,
			RenderOrder: 5,
		},
		AI: &component.AI{
			Behavior:   component.ParseBehavior(cfg.Behavior),
			SightRange: cfg.SightRange,
		},
	}
	a.Place(p, tileSize)
	return t.Spawn(a)
}
