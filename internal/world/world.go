// Package world owns the authoritative game state: the grid, the actors
// walking it, and the debug log. Every mutation goes through a World method;
// each one runs to completion before returning, and none of them fail: an
// invalid command is a no-op, sometimes explained by a debug log entry.
//
// A World is not safe for concurrent use; callers serialize access.
package world

import (
	"image"
	"log"
	"math/rand"

	"github.com/borkshop/dig/internal/grid"
	"github.com/borkshop/dig/internal/terrain"
)

// DefaultSize is the shipped grid size.
var DefaultSize = image.Pt(60, 30)

// DefaultStarts returns starting positions for two actors near opposite
// corners of a grid of the given size, inset enough that their clearance
// fits inside the border.
func DefaultStarts(sz image.Point) []image.Point {
	return []image.Point{
		image.Pt(3, 3),
		image.Pt(sz.X-4, sz.Y-4),
	}
}

// Options configure a new World.
type Options struct {
	Size      image.Point
	Starts    []image.Point
	LogCap    int
	Generator *terrain.Generator
}

// DefaultOptions returns the shipped configuration, seeding terrain from rng.
func DefaultOptions(rng *rand.Rand) Options {
	return Options{
		Size:      DefaultSize,
		Starts:    DefaultStarts(DefaultSize),
		LogCap:    DefaultLogCap,
		Generator: terrain.New(rng),
	}
}

// World is the single source of truth for game state.
type World struct {
	grid      grid.Grid
	actors    []Actor
	logs      Logs
	showDebug bool

	gen    *terrain.Generator
	logger *log.Logger
}

// New creates a world with an actor at each starting position, numbered from
// 1 in order, and generates its terrain. Starts outside the interior, or
// already taken by an earlier actor, are skipped.
func New(opts Options) *World {
	w := &World{
		grid: grid.Make(opts.Size),
		gen:  opts.Generator,
	}
	if w.gen == nil {
		w.gen = terrain.New(rand.New(rand.NewSource(rand.Int63())))
	}
	w.logs.Init(opts.LogCap)
	w.actors = make([]Actor, 0, len(opts.Starts))
	taken := make(map[image.Point]bool, len(opts.Starts))
	for _, pt := range opts.Starts {
		if taken[pt] || !pt.In(w.grid.Interior()) {
			continue
		}
		taken[pt] = true
		w.actors = append(w.actors, Actor{
			ID:        len(w.actors) + 1,
			Pos:       pt,
			Inventory: NewInventory(),
		})
	}
	w.generate()
	return w
}

// SetLogger mirrors every subsequent debug log entry to logger; nil disables
// mirroring.
func (w *World) SetLogger(logger *log.Logger) { w.logger = logger }

// Regenerate zeroes every actor's stone and generates fresh terrain around
// the actors where they stand, then adds a "world regenerated" entry to the
// debug log.
func (w *World) Regenerate() {
	for i := range w.actors {
		w.actors[i].Inventory.Reset(Stone)
	}
	w.generate()
	w.log("world regenerated")
}

func (w *World) generate() {
	fps := make([]terrain.Footprint, len(w.actors))
	for i, actor := range w.actors {
		fps[i] = terrain.Footprint{ID: actor.ID, Pos: actor.Pos}
	}
	w.gen.Generate(w.grid, fps)
}

// TogglePanel flips whether the debug panel should be shown.
func (w *World) TogglePanel() { w.showDebug = !w.showDebug }

// DebugVisible returns true if the debug panel should be shown.
func (w *World) DebugVisible() bool { return w.showDebug }

// ClearLog discards all debug log messages.
func (w *World) ClearLog() { w.logs.Clear() }

// Log returns the debug log messages, oldest first.
func (w *World) Log() []string { return w.logs.Lines() }

// Size returns the grid dimensions.
func (w *World) Size() image.Point { return w.grid.Size }

// Cell returns the cell at pt, or a Wall cell if pt is outside the grid.
func (w *World) Cell(pt image.Point) grid.Cell {
	if c, ok := w.grid.At(pt); ok {
		return c
	}
	return grid.WallCell
}

// Lines renders the grid with the given glyph mapping, one string per row.
func (w *World) Lines(glyph func(grid.Cell) rune) []string {
	return w.grid.Lines(glyph)
}

// NumActors returns how many actors there are.
func (w *World) NumActors() int { return len(w.actors) }

// Actor returns a copy of the actor at index i, and false if there is none.
func (w *World) Actor(i int) (Actor, bool) {
	if i < 0 || i >= len(w.actors) {
		return Actor{}, false
	}
	return w.actors[i].clone(), true
}

// Actors returns copies of all actors, in order.
func (w *World) Actors() []Actor {
	actors := make([]Actor, len(w.actors))
	for i := range w.actors {
		actors[i] = w.actors[i].clone()
	}
	return actors
}

func (w *World) log(mess string, args ...interface{}) {
	s := w.logs.Log(mess, args...)
	if w.logger != nil {
		w.logger.Print(s)
	}
}
