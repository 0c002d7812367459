package keyboard

import (
	"io"

	"github.com/mastercactapus/keymadness/coord"
)

// A Cursor tracks a position on a layout and accumulates selected
// keys. Movement wraps around the grid edges, so the position is
// always in bounds and no instruction can fail.
type Cursor struct {
	layout Layout
	pos    coord.Point
	keys   []byte
}

// NewCursor constructs a Cursor over l. start is wrapped onto the
// grid the same way movement is.
func NewCursor(l Layout, start coord.Point) *Cursor {
	return &Cursor{layout: l, pos: start.Wrap(Cols, Rows)}
}

// Position returns the current cursor position.
func (c *Cursor) Position() coord.Point {
	return c.pos
}

// Output returns the keys selected so far.
func (c *Cursor) Output() string {
	return string(c.keys)
}

// Clear discards the accumulated output.
func (c *Cursor) Clear() {
	c.keys = c.keys[:0]
}

// MoveTo repositions the cursor, wrapping onto the grid.
func (c *Cursor) MoveTo(p coord.Point) {
	c.pos = p.Wrap(Cols, Rows)
}

// Apply executes a single instruction. Repeat counts resolve in one
// modulo step, so Apply is O(1) for any count. Counts on
// non-movement instructions are ignored.
func (c *Cursor) Apply(in Instruction) {
	switch in.Op {
	case OpLeft:
		c.MoveTo(c.pos.Sub(coord.Point{X: in.Count}))
	case OpRight:
		c.MoveTo(c.pos.Add(coord.Point{X: in.Count}))
	case OpUp:
		c.MoveTo(c.pos.Sub(coord.Point{Y: in.Count}))
	case OpDown:
		c.MoveTo(c.pos.Add(coord.Point{Y: in.Count}))
	case OpSpace:
		c.keys = append(c.keys, ' ')
	case OpNewline:
		c.keys = append(c.keys, '\n')
	case OpSelect:
		c.keys = append(c.keys, c.layout.Key(c.pos))
	}
}

// Run drains r, applying each instruction in order. The only
// possible errors come from the underlying reader; instruction
// content never fails.
func (c *Cursor) Run(r Reader) error {
	for {
		in, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		c.Apply(in)
	}
}

// RunString parses and runs a raw instruction string.
func (c *Cursor) RunString(instructions string) {
	for _, in := range Parse(instructions) {
		c.Apply(in)
	}
}
