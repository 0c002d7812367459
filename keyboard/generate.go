package keyboard

import (
	"strings"

	"github.com/mastercactapus/keymadness/coord"
)

// GenerateInstructions returns an instruction string that types text
// on l starting from start: the inverse of running. Characters not
// present on the layout are skipped.
func GenerateInstructions(l Layout, start coord.Point, text string) string {
	pos := start.Wrap(Cols, Rows)

	var tokens []string
	emit := func(in Instruction) {
		tokens = append(tokens, in.String())
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			emit(Instruction{Op: OpSpace})
			continue
		case '\n':
			emit(Instruction{Op: OpNewline})
			continue
		}

		target, ok := l.Find(text[i])
		if !ok {
			continue
		}

		d := target.Sub(pos)
		switch {
		case d.X > 0:
			emit(Instruction{Op: OpRight, Count: d.X})
		case d.X < 0:
			emit(Instruction{Op: OpLeft, Count: -d.X})
		}
		switch {
		case d.Y > 0:
			emit(Instruction{Op: OpDown, Count: d.Y})
		case d.Y < 0:
			emit(Instruction{Op: OpUp, Count: -d.Y})
		}
		emit(Instruction{Op: OpSelect})
		pos = target
	}

	return strings.Join(tokens, ",")
}
