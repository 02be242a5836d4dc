// Package input translates terminal key events into game commands.
package input

import (
	"image"
	"unicode"

	"github.com/gdamore/tcell"
)

// Move steps an actor one cell in Dir.
type Move struct {
	Actor int
	Dir   image.Point
}

// Place puts a stone one cell from an actor in Dir.
type Place struct {
	Actor int
	Dir   image.Point
}

// Regenerate requests a fresh map.
type Regenerate struct{}

// TogglePanel shows or hides the debug panel.
type TogglePanel struct{}

// Quit ends the run loop.
type Quit struct{}

// Help shows the key bindings.
type Help struct{}

// Parse parses a key event into one of the command types above. The first
// actor moves with w/a/s/d and places with the shifted letters; the second
// moves with the arrow keys and places with ctrl+arrow.
//
// Returns the command and true if the event was recognized, nil and false
// otherwise.
func Parse(ev *tcell.EventKey) (interface{}, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return parseRune(ev.Rune())
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		dir := parseArrow(ev.Key())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return Place{Actor: 1, Dir: dir}, true
		}
		return Move{Actor: 1, Dir: dir}, true
	}
	return nil, false
}

func parseRune(r rune) (interface{}, bool) {
	if dir, ok := parseWASD(r); ok {
		return Move{Actor: 0, Dir: dir}, true
	}
	if dir, ok := parseWASD(unicode.ToLower(r)); ok {
		return Place{Actor: 0, Dir: dir}, true
	}
	switch unicode.ToLower(r) {
	case 'r':
		return Regenerate{}, true
	case 'p':
		return TogglePanel{}, true
	case 'q':
		return Quit{}, true
	case '?':
		return Help{}, true
	}
	return nil, false
}

func parseWASD(ch rune) (image.Point, bool) {
	switch ch {
	case 'a':
		return image.Pt(-1, 0), true
	case 'd':
		return image.Pt(1, 0), true
	case 'w':
		return image.Pt(0, -1), true
	case 's':
		return image.Pt(0, 1), true
	}
	return image.ZP, false
}

func parseArrow(k tcell.Key) image.Point {
	switch k {
	case tcell.KeyLeft:
		return image.Pt(-1, 0)
	case tcell.KeyRight:
		return image.Pt(1, 0)
	case tcell.KeyUp:
		return image.Pt(0, -1)
	case tcell.KeyDown:
		return image.Pt(0, 1)
	}
	return image.ZP
}
