package world

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/dig/internal/grid"
)

func TestWorld_Place(t *testing.T) {
	lines := []string{
		"XXXXXXX",
		"X.....X",
		"X.1.~.X",
		"X.....X",
		"X....2X",
		"XXXXXXX",
	}
	for _, tc := range []struct {
		name     string
		stone    int
		target   image.Point
		expected []string
		left     int
		log      string
	}{
		{
			name:   "orthogonal",
			stone:  2,
			target: image.Pt(2, 1),
			expected: []string{
				"XXXXXXX",
				"X.#...X",
				"X.1.~.X",
				"X.....X",
				"X....2X",
				"XXXXXXX",
			},
			left: 1,
			log:  "player 1 placed a stone at (2, 1) (stone: 1)",
		},
		{
			name:   "diagonal",
			stone:  1,
			target: image.Pt(3, 3),
			expected: []string{
				"XXXXXXX",
				"X.....X",
				"X.1.~.X",
				"X..#..X",
				"X....2X",
				"XXXXXXX",
			},
			left: 0,
			log:  "player 1 placed a stone at (3, 3) (stone: 0)",
		},
		{
			name:     "out of bounds",
			stone:    1,
			target:   image.Pt(-1, 2),
			expected: lines,
			left:     1,
			log:      "player 1 cannot place at (-1, 2): out of bounds",
		},
		{
			name:     "onto wall",
			stone:    1,
			target:   image.Pt(0, 0),
			expected: lines,
			left:     1,
			log:      "player 1 cannot place at (0, 0): not empty (wall)",
		},
		{
			name:     "onto water",
			stone:    1,
			target:   image.Pt(4, 2),
			expected: lines,
			left:     1,
			log:      "player 1 cannot place at (4, 2): not empty (water)",
		},
		{
			name:     "no stones",
			stone:    0,
			target:   image.Pt(1, 2),
			expected: lines,
			left:     0,
			log:      "player 1 has no stones to place",
		},
		{
			name:     "not adjacent",
			stone:    3,
			target:   image.Pt(4, 3),
			expected: lines,
			left:     3,
			log:      "player 1 cannot place at (4, 3): not adjacent",
		},
		{
			name:     "far out of bounds",
			stone:    3,
			target:   image.Pt(1<<40, -1<<40),
			expected: lines,
			left:     3,
			log:      "player 1 cannot place at (1099511627776, -1099511627776): out of bounds",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := fromLines(lines...)
			w.actors[0].Inventory.Add(Stone, tc.stone)
			w.Place(0, tc.target)
			assert.Equal(t, tc.expected, w.Lines(grid.Cell.Rune))
			actor, _ := w.Actor(0)
			assert.Equal(t, tc.left, actor.Inventory.Count(Stone))
			assert.Equal(t, []string{tc.log}, w.Log())
		})
	}
}

func TestWorld_Place_noSuchActor(t *testing.T) {
	w := fromLines("XXXX", "X1.X", "XXXX")
	w.Place(-1, image.Pt(2, 1))
	w.Place(1, image.Pt(2, 1))
	w.PlaceToward(5, right)
	assert.Empty(t, w.Log())
	assert.Equal(t, []string{"XXXX", "X1.X", "XXXX"}, w.Lines(grid.Cell.Rune))
}

func TestWorld_collectThenPlace(t *testing.T) {
	w := fromLines(
		"XXXXXXXX",
		"X1#....X",
		"X.....2X",
		"XXXXXXXX",
	)
	w.MoveActor(0, right)
	actor, _ := w.Actor(0)
	require.Equal(t, 1, actor.Inventory.Count(Stone))
	assert.True(t, w.Cell(image.Pt(1, 1)).Is(grid.Empty), "vacated cell")
	require.Len(t, w.Log(), 1)
	assert.Contains(t, w.Log()[0], "collected a stone")
	assert.Contains(t, w.Log()[0], "1")

	// the actor's own cell is in range but holds the actor
	w.Place(0, actor.Pos)
	actor, _ = w.Actor(0)
	assert.Equal(t, 1, actor.Inventory.Count(Stone))
	require.Len(t, w.Log(), 2)
	assert.Contains(t, w.Log()[1], "not empty")

	// put it back behind
	w.PlaceToward(0, left)
	actor, _ = w.Actor(0)
	assert.Equal(t, 0, actor.Inventory.Count(Stone))
	assert.Equal(t, []string{
		"XXXXXXXX",
		"X#1....X",
		"X.....2X",
		"XXXXXXXX",
	}, w.Lines(grid.Cell.Rune))
	assert.Equal(t, "player 1 placed a stone at (1, 1) (stone: 0)", w.Log()[2])
}
