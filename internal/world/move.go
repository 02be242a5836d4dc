package world

import (
	"image"

	"github.com/borkshop/dig/internal/grid"
	"github.com/borkshop/dig/internal/moremath"
)

// MoveActor steps the actor at index i one cell in direction dir, which must
// be an orthogonal unit step. Walking onto stone collects it. Moves that would
// leave the interior, or run into water, wall, or another actor, do nothing.
func (w *World) MoveActor(i int, dir image.Point) {
	if i < 0 || i >= len(w.actors) || !moremath.IsUnitStep(dir) {
		return
	}
	actor := &w.actors[i]
	to := actor.Pos.Add(dir)
	if !to.In(w.grid.Interior()) {
		return
	}
	switch w.grid.Get(to).Kind {
	case grid.Empty:
		w.relocate(actor, to)
	case grid.Stone:
		n := actor.Inventory.Add(Stone, 1)
		w.grid.Set(to, grid.EmptyCell)
		w.relocate(actor, to)
		w.log("player %d collected a stone (stone: %d)", actor.ID, n)
	}
}

func (w *World) relocate(actor *Actor, to image.Point) {
	w.grid.Set(actor.Pos, grid.EmptyCell)
	w.grid.Set(to, grid.ActorCell(actor.ID))
	actor.Pos = to
}
