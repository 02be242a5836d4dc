package ui

import (
	"image"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/dig/internal/grid"
	"github.com/borkshop/dig/internal/moremath"
	"github.com/borkshop/dig/internal/world"
)

// actorColors distinguish actors by id; ids past the end wrap around.
var actorColors = []tcell.Color{
	tcell.ColorLightGreen,
	tcell.ColorOrange,
	tcell.ColorAqua,
	tcell.ColorFuchsia,
}

func actorColor(id int) tcell.Color {
	if id < 1 {
		return tcell.ColorWhite
	}
	return actorColors[(id-1)%len(actorColors)]
}

// cellGlyph returns how a cell is drawn on the map.
func cellGlyph(c grid.Cell) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch c.Kind {
	case grid.Actor:
		return '@', style.Foreground(actorColor(c.Actor)).Bold(true)
	case grid.Stone:
		return '#', style.Foreground(tcell.ColorSilver)
	case grid.Water:
		return '~', style.Foreground(tcell.ColorBlue)
	case grid.Wall:
		return '█', style.Foreground(tcell.ColorGray)
	}
	return ' ', style
}

// mapView draws the world grid, centered in its view.
type mapView struct {
	views.WidgetWatchers
	view  views.View
	port  *views.ViewPort
	world *world.World
}

func newMapView(w *world.World) *mapView {
	v := &mapView{world: w}
	v.port = views.NewViewPort(nil, 0, 0, 0, 0)
	return v
}

// HandleEvent ignores events; commands reach the world through the HUD.
func (v *mapView) HandleEvent(ev tcell.Event) bool { return false }

func (v *mapView) Size() (int, int) {
	sz := v.world.Size()
	return sz.X, sz.Y
}

func (v *mapView) SetView(view views.View) {
	v.port.SetView(view)
	v.view = view
	if v.view == nil {
		return
	}
	v.Resize()
	v.PostEventWidgetContent(v)
}

func (v *mapView) Resize() {
	if v.view != nil {
		v.updateSize()
	}
}

func (v *mapView) updateSize() {
	sz := v.world.Size()
	vw, vh := v.view.Size()
	px := moremath.MaxInt(0, vw-sz.X) / 2
	py := moremath.MaxInt(0, vh-sz.Y) / 2
	v.port.Resize(px, py, vw-px, vh-py)
	v.port.SetContentSize(sz.X, sz.Y, true)
}

func (v *mapView) Draw() {
	if v.view == nil {
		return
	}
	v.updateSize()
	v.view.Fill(' ', tcell.StyleDefault)
	for _, actor := range v.world.Actors() {
		v.port.MakeVisible(actor.Pos.X, actor.Pos.Y)
	}
	sz := v.world.Size()
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			ch, style := cellGlyph(v.world.Cell(image.Pt(x, y)))
			v.port.SetContent(x, y, ch, nil, style)
		}
	}
}
