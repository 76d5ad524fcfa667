package programs

import "fmt"

type Opcode uint8

const (
	IncrCell Opcode = iota + 1
	DecrCell
	MoveRight
	MoveLeft
	Print
	LoopStart
	LoopEnd
)

var opcodeChars = [...]byte{
	IncrCell:  '+',
	DecrCell:  '-',
	MoveRight: '>',
	MoveLeft:  '<',
	Print:     '.',
	LoopStart: '[',
	LoopEnd:   ']',
}

func (o Opcode) Valid() bool {
	return o >= IncrCell && o <= LoopEnd
}

func (o Opcode) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Opcode(%d)", uint8(o))
	}
	return string(opcodeChars[o])
}

// OpcodeOf maps a source byte to its opcode.
func OpcodeOf(b byte) (Opcode, bool) {
	switch b {
	case '+':
		return IncrCell, true
	case '-':
		return DecrCell, true
	case '>':
		return MoveRight, true
	case '<':
		return MoveLeft, true
	case '.':
		return Print, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	}
	return 0, false
}
