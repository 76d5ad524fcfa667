package programs

// Parse reads source text. Bytes other than the seven command characters are comments,
// so doubled operators such as ">>" or ".." are simply repeated opcodes.
func Parse(src string) (*Program, error) {
	var ops []Opcode
	var positions []position
	line, column := 1, 1
	for i := 0; i < len(src); i++ {
		b := src[i]
		if op, ok := OpcodeOf(b); ok {
			ops = append(ops, op)
			positions = append(positions, position{
				offset: i,
				line:   line,
				column: column,
			})
		}
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return build(ops, positions)
}

func MustParse(src string) *Program {
	program, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return program
}
