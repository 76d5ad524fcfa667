package machines

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/reusee/bfvm/counters"
	"github.com/reusee/bfvm/outputs"
	"github.com/reusee/bfvm/programs"
	"github.com/reusee/bfvm/tapes"
)

// Machine executes a program over a tape it owns exclusively.
type Machine struct {
	Program *programs.Program
	Tape    *tapes.Tape
	Output  *outputs.Buffer
	IP      int
	Steps   int64
}

// Step describes one executed opcode and the state it left behind.
type Step struct {
	Index   int
	Op      programs.Opcode
	Pointer int
	Cell    counters.Counter
}

// New returns a machine positioned at the first opcode. The tape is copied; nil means an empty tape.
func New(program *programs.Program, tape *tapes.Tape) *Machine {
	if tape == nil {
		tape = tapes.New()
	} else {
		tape = tape.Clone()
	}
	return &Machine{
		Program: program,
		Tape:    tape,
		Output:  outputs.NewBuffer(),
	}
}

func (m *Machine) Done() bool {
	return m.IP >= m.Program.Len()
}

// Run executes opcodes until the program is exhausted, yielding after each one.
// Breaking out of the loop suspends the machine; a later Run resumes it.
func (m *Machine) Run(yield func(Step) bool) {
	for !m.Done() {
		if !yield(m.step()) {
			return
		}
	}
}

func (m *Machine) step() Step {
	index := m.IP
	op := m.Program.At(index)
	tape := m.Tape

	switch op {

	case programs.IncrCell:
		tape.IncrementAt(tape.Pointer())
		m.IP++

	case programs.DecrCell:
		tape.DecrementAt(tape.Pointer())
		m.IP++

	case programs.MoveRight:
		tape.MoveRight()
		m.IP++

	case programs.MoveLeft:
		tape.MoveLeft()
		m.IP++

	case programs.Print:
		m.Output.Append(tape.Current())
		m.IP++

	case programs.LoopStart:
		// the condition lives at the matching end
		m.IP = m.Program.Match(index)

	case programs.LoopEnd:
		if tape.Current().IsZero() {
			m.IP++
		} else {
			m.IP = m.Program.Match(index) + 1
		}

	default:
		panic(fmt.Errorf("bad opcode %v at %d", op, index))
	}

	m.Steps++
	return Step{
		Index:   index,
		Op:      op,
		Pointer: tape.Pointer(),
		Cell:    tape.Peek(tape.Pointer()),
	}
}

// Execute runs program to completion over a copy of tape.
func Execute(program *programs.Program, tape *tapes.Tape) (*tapes.Tape, *outputs.Buffer) {
	m := New(program, tape)
	for range m.Run {
	}
	return m.Tape, m.Output
}

type snapshot struct {
	Source string
	Tape   *tapes.Tape
	Output *outputs.Buffer
	IP     int
	Steps  int64
}

// Snapshot writes the complete machine state.
func (m *Machine) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(snapshot{
		Source: m.Program.String(),
		Tape:   m.Tape,
		Output: m.Output,
		IP:     m.IP,
		Steps:  m.Steps,
	})
}

// Restore replaces the machine state with a snapshot.
func (m *Machine) Restore(r io.Reader) error {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return err
	}
	program, err := programs.Parse(snap.Source)
	if err != nil {
		return err
	}
	if snap.Tape == nil {
		snap.Tape = tapes.New()
	}
	if snap.Output == nil {
		snap.Output = outputs.NewBuffer()
	}
	*m = Machine{
		Program: program,
		Tape:    snap.Tape,
		Output:  snap.Output,
		IP:      snap.IP,
		Steps:   snap.Steps,
	}
	return nil
}
