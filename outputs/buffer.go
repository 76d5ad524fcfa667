package outputs

import (
	"bytes"
	"encoding/gob"
	"slices"

	"github.com/reusee/bfvm/counters"
)

// Buffer records one value per executed print, in execution order.
type Buffer struct {
	values []counters.Counter
}

func NewBuffer(values ...counters.Counter) *Buffer {
	return &Buffer{
		values: slices.Clone(values),
	}
}

func (b *Buffer) Append(value counters.Counter) {
	b.values = append(b.values, value)
}

func (b *Buffer) Len() int {
	return len(b.values)
}

func (b *Buffer) At(i int) counters.Counter {
	return b.values[i]
}

func (b *Buffer) Values() []counters.Counter {
	return slices.Clone(b.values)
}

func (b *Buffer) GobEncode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(bufferDocument{
		Values: b.values,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Buffer) GobDecode(data []byte) error {
	var doc bufferDocument
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return err
	}
	b.values = doc.Values
	return nil
}

type bufferDocument struct {
	Values []counters.Counter
}
