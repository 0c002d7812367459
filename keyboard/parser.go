package keyboard

import (
	"bufio"
	"io"
	"strings"
)

// A Parser reads comma-delimited instruction tokens from a stream,
// one instruction per Read.
type Parser struct {
	br   *bufio.Reader
	done bool
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

func (p *Parser) Read() (Instruction, error) {
	if p.done {
		return Instruction{}, io.EOF
	}

	tok, err := p.br.ReadString(',')
	if err == io.EOF {
		// the final token has no delimiter; an empty stream still
		// yields its one empty token
		p.done = true
		err = nil
	}
	if err != nil {
		return Instruction{}, err
	}

	return ParseInstruction(strings.TrimSuffix(tok, ",")), nil
}

// Parse materializes every instruction in data. It never fails:
// malformed tokens degrade to no-ops rather than errors.
func Parse(data string) []Instruction {
	p := NewParser(strings.NewReader(data))
	var ins []Instruction
	for {
		in, err := p.Read()
		if err != nil {
			break
		}
		ins = append(ins, in)
	}
	return ins
}
