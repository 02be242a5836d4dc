// Package ui is the terminal front end: a tcell views widget tree that draws
// the world and feeds it commands parsed from key events. Nothing here changes
// game state except through the world's own methods.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/dig/internal/input"
	"github.com/borkshop/dig/internal/world"
)

var helpLines = []string{
	`/ Player 1 --------------------------------\`,
	`|   w a s d  : move                        |`,
	`|   W A S D  : place a stone that way      |`,
	`+ Player 2 --------------------------------+`,
	`|   arrows   : move                        |`,
	`|   ctrl+arr : place a stone that way      |`,
	`+------------------------------------------+`,
	`|   walk onto # to collect stone           |`,
	`|   stone goes on any empty cell next to   |`,
	`|   the player, diagonals included         |`,
	`\------------------------------------------/`,
}

// HUD is the root widget: a title, the map beside an inventory and debug
// column, a status line, and a key bar.
type HUD struct {
	views.Panel

	modal views.Widget

	title   *views.TextBar
	keybar  *keybar
	status  *views.SimpleStyledTextBar
	content *views.BoxLayout
	side    *views.BoxLayout
	mapView *mapView
	inv     *linesView
	debug   *linesView

	debugShown bool

	world   *world.World
	quit    func()
	refresh func()
}

// New builds the widget tree over w; quit ends the run loop, refresh forces a
// full redraw. Either may be nil.
func New(w *world.World, quit, refresh func()) *HUD {
	hud := &HUD{
		world:   w,
		quit:    quit,
		refresh: refresh,
	}
	hud.init()
	return hud
}

func (hud *HUD) init() {
	hud.title = views.NewTextBar()
	hud.title.SetCenter("dig", tcell.StyleDefault.Bold(true))

	hud.keybar = newKeybar()
	hud.keybar.bind('?', "Help", hud.help)
	hud.keybar.bind('q', "Quit", hud.doQuit)
	hud.keybar.bind('r', "Regenerate", func() { hud.apply(input.Regenerate{}) })
	hud.keybar.bind('p', "Debug", func() { hud.apply(input.TogglePanel{}) })

	hud.status = views.NewSimpleStyledTextBar()

	hud.mapView = newMapView(hud.world)
	hud.inv = newLinesView("Inventory", func() []string {
		return inventoryLines(hud.world)
	})
	hud.debug = newLinesView("Log", hud.world.Log)
	hud.debug.newest = true

	hud.side = views.NewBoxLayout(views.Vertical)
	hud.side.AddWidget(hud.inv, 0.0)

	hud.content = views.NewBoxLayout(views.Horizontal)
	hud.content.AddWidget(hud.mapView, 0.0)
	hud.content.AddWidget(hud.side, 1.0)

	hud.SetMenu(hud.status)
	hud.SetTitle(hud.title)
	hud.SetStatus(hud.keybar)
	hud.SetContent(hud.content)

	hud.syncPanels()
}

func (hud *HUD) help() {
	halp := views.NewTextArea()
	lines := append([]string(nil), helpLines...)
	lines = append(lines, "", "keys: "+fmt.Sprint(hud.keybar.labels()))
	halp.SetLines(lines)
	hud.showModal(halp)
}

func (hud *HUD) showModal(wid views.Widget) {
	hud.keybar.save()
	hud.modal = wid
	hud.SetContent(wid)
	hud.keybar.bind('q', "Resume Game", hud.hideModal)
}

func (hud *HUD) hideModal() {
	hud.keybar.restore()
	hud.modal = nil
	hud.SetContent(hud.content)
}

func (hud *HUD) doQuit() {
	if hud.quit != nil {
		hud.quit()
	}
}

// apply runs a world command and brings the panels in line with it.
func (hud *HUD) apply(cmd interface{}) {
	input.Apply(hud.world, cmd)
	hud.syncPanels()
}

// syncPanels shows or hides the debug column to match the world's flag.
func (hud *HUD) syncPanels() {
	if want := hud.world.DebugVisible(); want != hud.debugShown {
		if want {
			hud.side.AddWidget(hud.debug, 1.0)
		} else {
			hud.side.RemoveWidget(hud.debug)
		}
		hud.debugShown = want
	}
}

func (hud *HUD) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlL:
			if hud.refresh != nil {
				hud.refresh()
			}
			return true
		case tcell.KeyCtrlC:
			hud.doQuit()
			return true
		}
		// actor keys go straight to the world; everything else is a
		// keybar command
		if hud.modal == nil {
			if cmd, ok := input.Parse(ev); ok {
				switch cmd.(type) {
				case input.Move, input.Place:
					hud.apply(cmd)
					return true
				}
			}
		}
	}

	if hud.Panel.HandleEvent(ev) {
		return true
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			hud.status.SetLeft(fmt.Sprintf("?rune %q", ev.Rune()))
		default:
			hud.status.SetLeft(fmt.Sprintf("?key %v", ev.Name()))
		}
	}
	return false
}
