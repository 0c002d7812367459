package keyboard

import (
	"strconv"
	"strings"
)

// An Op is a single-letter instruction code.
type Op byte

const (
	OpUnknown Op = 0
	OpLeft    Op = 'L'
	OpRight   Op = 'R'
	OpUp      Op = 'U'
	OpDown    Op = 'D'
	OpSpace   Op = '_'
	OpNewline Op = 'N'
	OpSelect  Op = 'S'
)

// An Instruction is one parsed unit of work: a movement with a
// repeat count, a selection, a whitespace insertion, or a no-op.
type Instruction struct {
	Op    Op
	Count int
}

// IsMove reports whether the instruction moves the cursor.
func (in Instruction) IsMove() bool {
	switch in.Op {
	case OpLeft, OpRight, OpUp, OpDown:
		return true
	}
	return false
}

// IsValid reports whether the instruction carries a recognized code.
func (in Instruction) IsValid() bool {
	return in.Op != OpUnknown
}

// String returns the canonical token form: movements always carry an
// explicit count, the unknown instruction has no token at all.
func (in Instruction) String() string {
	if !in.IsValid() {
		return ""
	}
	if in.IsMove() {
		return string(in.Op) + ":" + strconv.Itoa(in.Count)
	}
	return string(in.Op)
}

// ParseInstruction parses a single comma-delimited token. It never
// fails: unrecognized codes become the unknown instruction and
// malformed counts fall back to 1. Codes are case-sensitive and
// tokens are taken literally, whitespace included.
func ParseInstruction(token string) Instruction {
	code, arg, hasArg := strings.Cut(token, ":")

	n := 1
	if hasArg {
		if v, err := strconv.Atoi(arg); err == nil && v > 0 {
			n = v
		}
	}

	switch code {
	case "L", "R", "U", "D", "_", "N", "S":
		return Instruction{Op: Op(code[0]), Count: n}
	}
	return Instruction{}
}
