package world

import (
	"image"

	"github.com/borkshop/dig/internal/grid"
	"github.com/borkshop/dig/internal/moremath"
)

// Place has the actor at index i put one stone from its inventory onto
// target. The target must be in the grid, empty, and within the actor's 3x3
// neighborhood, and the actor must carry stone; each failure is logged and
// changes nothing else.
func (w *World) Place(i int, target image.Point) {
	if i < 0 || i >= len(w.actors) {
		return
	}
	actor := &w.actors[i]
	if !w.grid.In(target) {
		w.log("player %d cannot place at (%d, %d): out of bounds", actor.ID, target.X, target.Y)
		return
	}
	if c := w.grid.Get(target); !c.Is(grid.Empty) {
		w.log("player %d cannot place at (%d, %d): not empty (%v)", actor.ID, target.X, target.Y, c)
		return
	}
	if actor.Inventory.Count(Stone) == 0 {
		w.log("player %d has no stones to place", actor.ID)
		return
	}
	if moremath.Chebyshev(actor.Pos, target) > 1 {
		w.log("player %d cannot place at (%d, %d): not adjacent", actor.ID, target.X, target.Y)
		return
	}
	w.grid.Set(target, grid.StoneCell)
	n := actor.Inventory.Add(Stone, -1)
	w.log("player %d placed a stone at (%d, %d) (stone: %d)", actor.ID, target.X, target.Y, n)
}

// PlaceToward places a stone one step from the actor at index i in direction
// dir.
func (w *World) PlaceToward(i int, dir image.Point) {
	if i < 0 || i >= len(w.actors) {
		return
	}
	w.Place(i, w.actors[i].Pos.Add(dir))
}
