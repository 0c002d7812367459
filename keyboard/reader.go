package keyboard

import "io"

// A Reader streams instructions in order until io.EOF. A Reader is
// not restartable; build a new one to iterate again.
type Reader interface {
	Read() (Instruction, error)
}

// An InstructionsReader reads from a fixed slice of instructions.
type InstructionsReader struct {
	Instructions []Instruction
	n            int
}

func (r *InstructionsReader) Read() (Instruction, error) {
	if r.n == len(r.Instructions) {
		return Instruction{}, io.EOF
	}

	r.n++
	return r.Instructions[r.n-1], nil
}
