package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
)

// keybar is the bottom row of single-key commands; it both labels them and
// runs them. Letter keys match either case.
type keybar struct {
	*views.SimpleStyledText
	binds []keyBind
	saved [][]keyBind
}

type keyBind struct {
	key   rune
	label string
	run   func()
}

func newKeybar() *keybar {
	kb := &keybar{SimpleStyledText: views.NewSimpleStyledText()}
	kb.RegisterStyle('N', tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	kb.RegisterStyle('A', tcell.StyleDefault.
		Background(tcell.ColorDarkBlue).
		Foreground(tcell.ColorSlateBlue))
	kb.RegisterStyle('S', tcell.StyleDefault.
		Background(tcell.ColorSlateBlue).
		Foreground(tcell.ColorDarkBlue))
	return kb
}

// bind adds a command under key; binding a key twice is a programming error.
func (kb *keybar) bind(key rune, label string, run func()) {
	if kb.lookup(key) != nil {
		panic(fmt.Sprintf("key %q already bound", key))
	}
	kb.binds = append(kb.binds, keyBind{key, label, run})
	kb.refresh()
}

// save stashes the current bindings and starts an empty set; restore brings
// the stashed set back.
func (kb *keybar) save() {
	kb.saved = append(kb.saved, kb.binds)
	kb.binds = nil
	kb.refresh()
}

func (kb *keybar) restore() {
	if n := len(kb.saved); n > 0 {
		kb.binds = kb.saved[n-1]
		kb.saved = kb.saved[:n-1]
		kb.refresh()
	}
}

func (kb *keybar) lookup(key rune) *keyBind {
	for i := range kb.binds {
		if kb.binds[i].key == key {
			return &kb.binds[i]
		}
	}
	for i := range kb.binds {
		if unicode.ToLower(kb.binds[i].key) == unicode.ToLower(key) {
			return &kb.binds[i]
		}
	}
	return nil
}

// labels returns "[k]Label" for each binding, in the order bound.
func (kb *keybar) labels() []string {
	parts := make([]string, len(kb.binds))
	for i, b := range kb.binds {
		parts[i] = fmt.Sprintf("[%c]%s", b.key, b.label)
	}
	return parts
}

func (kb *keybar) refresh() {
	var sb strings.Builder
	for i, b := range kb.binds {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%%S[%c]%%A%s%%N", b.key, b.label)
	}
	kb.SetMarkup(sb.String())
}

func (kb *keybar) HandleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok && ev.Key() == tcell.KeyRune {
		if b := kb.lookup(ev.Rune()); b != nil {
			b.run()
			return true
		}
	}
	return false
}
