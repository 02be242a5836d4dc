package grid

import "fmt"

// Kind enumerates the terrain or occupancy states a cell may be in.
type Kind uint8

const (
	// Empty cells are passable and may receive placed stone.
	Empty Kind = iota
	// Actor cells hold exactly one actor, identified by Cell.Actor.
	Actor
	// Stone cells are collected by walking into them.
	Stone
	// Water cells are impassable.
	Water
	// Wall cells form the border ring.
	Wall
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Actor:
		return "actor"
	case Stone:
		return "stone"
	case Water:
		return "water"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is the state of one grid coordinate. Actor is only meaningful when
// Kind is Actor.
type Cell struct {
	Kind  Kind
	Actor int
}

// Convenience values for the actor-less kinds.
var (
	EmptyCell = Cell{Kind: Empty}
	StoneCell = Cell{Kind: Stone}
	WaterCell = Cell{Kind: Water}
	WallCell  = Cell{Kind: Wall}
)

// ActorCell returns the slot cell for the actor with the given id.
func ActorCell(id int) Cell { return Cell{Kind: Actor, Actor: id} }

// Is returns true if the cell is of the given kind.
func (c Cell) Is(k Kind) bool { return c.Kind == k }

// IsActor returns true if the cell holds the given actor.
func (c Cell) IsActor(id int) bool { return c.Kind == Actor && c.Actor == id }

func (c Cell) String() string {
	if c.Kind == Actor {
		return fmt.Sprintf("actor(%d)", c.Actor)
	}
	return c.Kind.String()
}

// Rune returns a compact ASCII notation for the cell: '.' empty, '#' stone,
// '~' water, 'X' wall, and the actor id digit for actor slots (ids beyond 9
// render as '@').
func (c Cell) Rune() rune {
	switch c.Kind {
	case Stone:
		return '#'
	case Water:
		return '~'
	case Wall:
		return 'X'
	case Actor:
		if c.Actor >= 0 && c.Actor <= 9 {
			return rune('0' + c.Actor)
		}
		return '@'
	}
	return '.'
}

// ParseRune is the inverse of Cell.Rune.
func ParseRune(r rune) Cell {
	switch {
	case r == '#':
		return StoneCell
	case r == '~':
		return WaterCell
	case r == 'X':
		return WallCell
	case r >= '0' && r <= '9':
		return ActorCell(int(r - '0'))
	}
	return EmptyCell
}
