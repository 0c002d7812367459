package keyboard

import (
	"strings"

	"github.com/mastercactapus/keymadness/coord"
)

// Grid dimensions of every layout.
const (
	Cols = 10
	Rows = 4
)

// A Layout is a fixed table of keys addressed by (x, y), with
// (0, 0) the top-left key.
type Layout [Rows][Cols]byte

// Default is the standard madness keyboard.
var Default = Layout{
	{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0'},
	{'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P'},
	{'A', 'S', 'D', 'F', 'G', 'H', 'J', 'K', 'L', ';'},
	{'Z', 'X', 'C', 'V', 'B', 'N', 'M', ',', '.', '?'},
}

// Key returns the key under p. p must already be on the grid;
// Key does no bounds checking of its own.
func (l Layout) Key(p coord.Point) byte {
	return l[p.Y][p.X]
}

// Find returns the position of key on the layout.
func (l Layout) Find(key byte) (coord.Point, bool) {
	for y := range l {
		for x, k := range l[y] {
			if k == key {
				return coord.Point{X: x, Y: y}, true
			}
		}
	}
	return coord.Point{}, false
}

func (l Layout) String() string {
	rows := make([]string, 0, Rows)
	for _, row := range l {
		rows = append(rows, string(row[:]))
	}
	return strings.Join(rows, "\n")
}
