// Package grid holds the fixed-size cell map that the game world is played
// on.
package grid

import "image"

// Grid represents a sized, row-major buffer of cells.
type Grid struct {
	Size image.Point
	Data []Cell
}

// Make makes a new Grid with the given size, all cells Empty.
func Make(sz image.Point) Grid {
	g := Grid{Size: sz}
	g.Data = make([]Cell, sz.X*sz.Y)
	return g
}

// Bounds returns the rectangle covering every cell in the grid.
func (g Grid) Bounds() image.Rectangle {
	return image.Rectangle{Max: g.Size}
}

// Interior returns the rectangle inside the border ring.
func (g Grid) Interior() image.Rectangle {
	return g.Bounds().Inset(1)
}

// In returns true if pt addresses a cell of the grid.
func (g Grid) In(pt image.Point) bool { return pt.In(g.Bounds()) }

// Get returns the cell at pt, which must be in bounds.
func (g Grid) Get(pt image.Point) Cell {
	return g.Data[pt.Y*g.Size.X+pt.X]
}

// At returns the cell at pt and true, or the zero cell and false when pt lies
// outside the grid.
func (g Grid) At(pt image.Point) (Cell, bool) {
	if !g.In(pt) {
		return Cell{}, false
	}
	return g.Get(pt), true
}

// Set sets the cell at pt, which must be in bounds.
func (g Grid) Set(pt image.Point, c Cell) {
	g.Data[pt.Y*g.Size.X+pt.X] = c
}

// Fill sets every cell to c.
func (g Grid) Fill(c Cell) {
	for i := range g.Data {
		g.Data[i] = c
	}
}

// Ring sets every cell on the outermost rows and columns to c.
func (g Grid) Ring(c Cell) {
	for x := 0; x < g.Size.X; x++ {
		g.Set(image.Pt(x, 0), c)
		g.Set(image.Pt(x, g.Size.Y-1), c)
	}
	for y := 0; y < g.Size.Y; y++ {
		g.Set(image.Pt(0, y), c)
		g.Set(image.Pt(g.Size.X-1, y), c)
	}
}

// FillRect sets every cell in r, clipped to the interior, to c; the border
// ring is never touched.
func (g Grid) FillRect(r image.Rectangle, c Cell) {
	r = r.Intersect(g.Interior())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.Set(image.Pt(x, y), c)
		}
	}
}

// Neighborhood returns the square of cells within radius r of pt.
func Neighborhood(pt image.Point, r int) image.Rectangle {
	return image.Rect(pt.X-r, pt.Y-r, pt.X+r+1, pt.Y+r+1)
}

// Count returns how many cells within r satisfy the predicate.
func (g Grid) Count(r image.Rectangle, pred func(Cell) bool) int {
	r = r.Intersect(g.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pred(g.Get(image.Pt(x, y))) {
				n++
			}
		}
	}
	return n
}

// Lines returns a slice of row strings from the grid, mapping each cell to a
// rune with the given function.
func (g Grid) Lines(glyph func(Cell) rune) []string {
	lines := make([]string, g.Size.Y)
	line := make([]rune, g.Size.X)
	for y, i := 0, 0; y < g.Size.Y; y++ {
		for x := 0; x < g.Size.X; x++ {
			line[x] = glyph(g.Data[i])
			i++
		}
		lines[y] = string(line)
	}
	return lines
}

// Parse builds a grid from row strings in the Cell.Rune notation, the inverse
// of Lines(Cell.Rune); unrecognized runes become Empty.
func Parse(lines ...string) Grid {
	sz := image.Pt(0, len(lines))
	for _, line := range lines {
		if n := len([]rune(line)); n > sz.X {
			sz.X = n
		}
	}
	g := Make(sz)
	for y, line := range lines {
		for x, r := range []rune(line) {
			g.Set(image.Pt(x, y), ParseRune(r))
		}
	}
	return g
}
