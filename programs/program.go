package programs

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnbalanced = errors.New("unbalanced brackets")

// Program is an immutable opcode sequence whose brackets are matched.
type Program struct {
	ops   []Opcode
	match []int
}

// SyntaxError locates an unmatched bracket.
// Line and Column are 1-based and zero when the program was not built from source.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
	Op     Opcode
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: unmatched %s at line %d column %d", ErrUnbalanced, e.Op, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: unmatched %s at %d", ErrUnbalanced, e.Op, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrUnbalanced
}

type position struct {
	offset int
	line   int
	column int
}

// New builds a program from opcodes, resolving every bracket pair.
func New(ops ...Opcode) (*Program, error) {
	return build(slices.Clone(ops), nil)
}

func MustNew(ops ...Opcode) *Program {
	program, err := New(ops...)
	if err != nil {
		panic(err)
	}
	return program
}

func build(ops []Opcode, positions []position) (*Program, error) {
	fail := func(i int) error {
		e := &SyntaxError{
			Offset: i,
			Op:     ops[i],
		}
		if positions != nil {
			e.Offset = positions[i].offset
			e.Line = positions[i].line
			e.Column = positions[i].column
		}
		return e
	}

	match := make([]int, len(ops))
	var open []int
	for i, op := range ops {
		if !op.Valid() {
			panic(fmt.Errorf("invalid opcode %d at %d", op, i))
		}
		match[i] = -1
		switch op {
		case LoopStart:
			open = append(open, i)
		case LoopEnd:
			if len(open) == 0 {
				return nil, fail(i)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			match[start] = i
			match[i] = start
		}
	}
	if len(open) > 0 {
		return nil, fail(open[len(open)-1])
	}

	return &Program{
		ops:   ops,
		match: match,
	}, nil
}

func (p *Program) Len() int {
	return len(p.ops)
}

func (p *Program) At(i int) Opcode {
	return p.ops[i]
}

// Match returns the index of the bracket paired with the one at i, or -1 for other opcodes.
func (p *Program) Match(i int) int {
	return p.match[i]
}

func (p *Program) Ops() []Opcode {
	return slices.Clone(p.ops)
}

// String renders the program as canonical source.
func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.ops))
	for _, op := range p.ops {
		b.WriteByte(opcodeChars[op])
	}
	return b.String()
}
