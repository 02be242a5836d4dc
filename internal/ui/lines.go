package ui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/dig/internal/moremath"
	"github.com/borkshop/dig/internal/world"
)

// linesView draws a titled column of text, pulling fresh lines on every draw.
// When the lines overflow the view, the first ones are shown, or the last
// ones if newest is set.
type linesView struct {
	views.WidgetWatchers
	view   views.View
	title  string
	lines  func() []string
	newest bool
}

func newLinesView(title string, lines func() []string) *linesView {
	return &linesView{title: title, lines: lines}
}

func (lv *linesView) HandleEvent(ev tcell.Event) bool { return false }

func (lv *linesView) SetView(view views.View) { lv.view = view }

func (lv *linesView) Resize() {}

func (lv *linesView) Size() (int, int) {
	lines := lv.lines()
	w := utf8.RuneCountInString(lv.title)
	for _, line := range lines {
		w = moremath.MaxInt(w, utf8.RuneCountInString(line))
	}
	return w + 1, len(lines) + 1
}

func (lv *linesView) Draw() {
	if lv.view == nil {
		return
	}
	lv.view.Fill(' ', tcell.StyleDefault)
	puts(lv.view, 0, lv.title, tcell.StyleDefault.Bold(true).Underline(true))
	_, h := lv.view.Size()
	lines := lv.lines()
	n := moremath.MaxInt(0, moremath.MinInt(len(lines), h-1))
	if lv.newest {
		lines = lines[len(lines)-n:]
	} else {
		lines = lines[:n]
	}
	for i, line := range lines {
		puts(lv.view, i+1, line, tcell.StyleDefault)
	}
}

// puts writes s on row y of view, clipped to the view's width.
func puts(view views.View, y int, s string, style tcell.Style) {
	w, _ := view.Size()
	x := 0
	for _, r := range s {
		if x >= w {
			return
		}
		view.SetContent(x, y, r, nil, style)
		x++
	}
}

// inventoryLines lists every actor's counters in order.
func inventoryLines(w *world.World) []string {
	var lines []string
	for _, actor := range w.Actors() {
		lines = append(lines, fmt.Sprintf("Player %d", actor.ID))
		for _, slot := range actor.Inventory {
			lines = append(lines, fmt.Sprintf("  %s: %d", slot.Name, slot.Count))
		}
	}
	return lines
}
