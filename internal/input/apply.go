package input

import "github.com/borkshop/dig/internal/world"

// Apply routes a parsed command to the world, returning true if it was a
// world command (Move, Place, Regenerate, or TogglePanel); other commands are
// left to the caller.
func Apply(w *world.World, cmd interface{}) bool {
	switch c := cmd.(type) {
	case Move:
		w.MoveActor(c.Actor, c.Dir)
	case Place:
		w.PlaceToward(c.Actor, c.Dir)
	case Regenerate:
		w.Regenerate()
	case TogglePanel:
		w.TogglePanel()
	default:
		return false
	}
	return true
}
