// Package terrain generates the walled, water-cut, stone-strewn maps that the
// game is played on.
//
// Generation runs as ordered passes over a grid:
//   - fill empty
//   - wall ring
//   - water, where the water field exceeds WaterLevel
//   - stone, where the stone field exceeds StoneLevel and no water lies
//   - clearance around every actor, then the actors themselves
//
// Each pass after the ring only touches interior cells.
package terrain

import (
	"image"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/borkshop/dig/internal/grid"
)

// Defaults for Generator parameters.
const (
	DefaultScale      = 10.0
	DefaultWaterLevel = 0.4
	DefaultStoneLevel = 0.2
	DefaultClearance  = 1
)

// Field is a coherent noise function sampled at continuous coordinates.
type Field interface {
	Eval2(x, y float64) float64
}

// FieldFunc adapts a plain function into a Field.
type FieldFunc func(x, y float64) float64

// Eval2 calls f(x, y).
func (f FieldFunc) Eval2(x, y float64) float64 { return f(x, y) }

// Footprint locates an actor for generation purposes.
type Footprint struct {
	ID  int
	Pos image.Point
}

// Generator produces terrain from two independently seeded noise fields.
type Generator struct {
	// Scale divides cell coordinates before sampling a field.
	Scale float64

	// WaterLevel and StoneLevel are the field values above which a cell
	// becomes water or stone respectively.
	WaterLevel float64
	StoneLevel float64

	// Clearance is the radius of the square carved empty around each actor.
	Clearance int

	// NewField creates a field from a seed; defaults to OpenSimplex noise.
	NewField func(seed int64) Field

	rng *rand.Rand
}

// New creates a generator with default parameters, drawing field seeds from
// rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{
		Scale:      DefaultScale,
		WaterLevel: DefaultWaterLevel,
		StoneLevel: DefaultStoneLevel,
		Clearance:  DefaultClearance,
		NewField:   simplexField,
		rng:        rng,
	}
}

func simplexField(seed int64) Field { return opensimplex.New(seed) }

// Generate overwrites every cell of g with fresh terrain, keeping the given
// actors' footprints clear and stamping their slots.
func (gen *Generator) Generate(g grid.Grid, actors []Footprint) {
	g.Fill(grid.EmptyCell)
	g.Ring(grid.WallCell)

	water := gen.field()
	gen.scatter(g, water, gen.WaterLevel, grid.WaterCell)

	// stone lands only where still empty, so water wins ties
	stone := gen.field()
	gen.scatter(g, stone, gen.StoneLevel, grid.StoneCell)

	for _, actor := range actors {
		g.FillRect(grid.Neighborhood(actor.Pos, gen.Clearance), grid.EmptyCell)
	}
	for _, actor := range actors {
		if g.In(actor.Pos) {
			g.Set(actor.Pos, grid.ActorCell(actor.ID))
		}
	}
}

func (gen *Generator) field() Field {
	newField := gen.NewField
	if newField == nil {
		newField = simplexField
	}
	return newField(gen.rng.Int63())
}

func (gen *Generator) scatter(g grid.Grid, f Field, level float64, c grid.Cell) {
	scale := gen.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	box := g.Interior()
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			pt := image.Pt(x, y)
			if !g.Get(pt).Is(grid.Empty) {
				continue
			}
			if f.Eval2(float64(x)/scale, float64(y)/scale) > level {
				g.Set(pt, c)
			}
		}
	}
}
