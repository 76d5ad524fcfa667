package tapes

import (
	"fmt"
	"slices"

	"github.com/reusee/bfvm/counters"
)

// Tape is a rightward-growing sequence of cells with a pointer.
// Its length never shrinks and the pointer never goes below zero.
type Tape struct {
	cells   []counters.Counter
	pointer int
}

// New returns a tape holding cells, with the pointer at zero.
func New(cells ...counters.Counter) *Tape {
	return &Tape{
		cells: slices.Clone(cells),
	}
}

func (t *Tape) grow(index int) {
	if index < 0 {
		panic(fmt.Errorf("negative tape index %d", index))
	}
	if index < len(t.cells) {
		return
	}
	t.cells = append(t.cells, make([]counters.Counter, index+1-len(t.cells))...)
}

// ReadAt returns the cell at index, growing the tape to index+1 cells first if needed.
func (t *Tape) ReadAt(index int) counters.Counter {
	t.grow(index)
	return t.cells[index]
}

func (t *Tape) WriteAt(index int, value counters.Counter) {
	t.grow(index)
	t.cells[index] = value
}

func (t *Tape) IncrementAt(index int) {
	t.WriteAt(index, t.ReadAt(index).Increment())
}

func (t *Tape) DecrementAt(index int) {
	t.WriteAt(index, t.ReadAt(index).Decrement())
}

// Peek returns the cell at index without growing the tape.
func (t *Tape) Peek(index int) counters.Counter {
	if index < 0 || index >= len(t.cells) {
		return counters.Zero
	}
	return t.cells[index]
}

// MoveRight advances the pointer. Growth happens on the next access.
func (t *Tape) MoveRight() {
	t.pointer++
}

// MoveLeft moves the pointer back, stopping at zero.
func (t *Tape) MoveLeft() {
	if t.pointer > 0 {
		t.pointer--
	}
}

func (t *Tape) Pointer() int {
	return t.pointer
}

// Current reads the cell under the pointer.
func (t *Tape) Current() counters.Counter {
	return t.ReadAt(t.pointer)
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Cells() []counters.Counter {
	return slices.Clone(t.cells)
}

func (t *Tape) Clone() *Tape {
	return &Tape{
		cells:   slices.Clone(t.cells),
		pointer: t.pointer,
	}
}
