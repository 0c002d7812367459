package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mastercactapus/keymadness/coord"
)

func runFrom(x, y int, instructions string) *Cursor {
	c := NewCursor(Default, coord.Point{X: x, Y: y})
	c.RunString(instructions)
	return c
}

func TestCursor_RunString(t *testing.T) {
	check := func(instructions, output string) {
		t.Helper()
		assert.Equal(t, output, runFrom(4, 2, instructions).Output(), "instructions %q", instructions)
	}

	check("S", "G")
	check("L,S", "F")
	check("L:3,S", "S")
	check("R,S", "H")
	check("R:3,S", "K")
	check("U,S", "T")
	check("D,S", "B")
	check("S,_,S", "G G")
	check("S,N,S", "G\nG")
	check("_,N,S", " \nG")
	check("S,Testing,Testing,Testing,S", "GG")
	check("R,S,R:2,U,S", "HI")
	check("R,S,U,L:3,S,D,R:6,S,S,U,S", "HELLO")
	check("L:3,S,U,R:5,S,R:3,S,D:2,S", "SUP?")
	check("R,S,L,U,S,S,R:5,S,_,U:1,L:6,S,R:6,S,L:6,S", "HTTP 404")
	check("", "")
}

func TestCursor_Wraparound(t *testing.T) {
	c := runFrom(0, 0, "L,S")
	assert.Equal(t, coord.Point{X: 9, Y: 0}, c.Position())
	assert.Equal(t, "0", c.Output())

	// full-row and full-column moves are identities
	assert.Equal(t, coord.Point{X: 4, Y: 2}, runFrom(4, 2, "R:10,D:4").Position())

	// counts resolve by modulo, however large
	assert.Equal(t, coord.Point{X: 5, Y: 1}, runFrom(4, 2, "R:41,U:13").Position())
}

func TestCursor_MoveInverse(t *testing.T) {
	for n := 1; n <= 25; n++ {
		c := NewCursor(Default, coord.Point{X: 3, Y: 1})
		c.Apply(Instruction{Op: OpRight, Count: n})
		c.Apply(Instruction{Op: OpLeft, Count: n})
		c.Apply(Instruction{Op: OpDown, Count: n})
		c.Apply(Instruction{Op: OpUp, Count: n})
		assert.Equal(t, coord.Point{X: 3, Y: 1}, c.Position(), "count %d", n)
	}
}

func TestCursor_UnknownNoOp(t *testing.T) {
	c := runFrom(4, 2, "Z")
	assert.Equal(t, "", c.Output())
	assert.Equal(t, coord.Point{X: 4, Y: 2}, c.Position())
}

func TestCursor_StartNormalized(t *testing.T) {
	c := NewCursor(Default, coord.Point{X: 14, Y: -2})
	assert.Equal(t, coord.Point{X: 4, Y: 2}, c.Position())

	c.RunString("S")
	assert.Equal(t, "G", c.Output())
}

func TestCursor_Run(t *testing.T) {
	c := NewCursor(Default, coord.Point{X: 4, Y: 2})

	err := c.Run(&InstructionsReader{Instructions: Parse("R,S")})
	assert.NoError(t, err)
	assert.Equal(t, "H", c.Output())
}

func TestCursor_ClearAndMoveTo(t *testing.T) {
	c := runFrom(4, 2, "R,S")
	assert.Equal(t, "H", c.Output())

	c.Clear()
	c.MoveTo(coord.Point{X: 4, Y: 2})
	c.RunString("S")
	assert.Equal(t, "G", c.Output())
}
