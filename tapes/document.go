package tapes

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reusee/bfvm/counters"
	"gopkg.in/yaml.v3"
)

var ErrBadDocument = errors.New("bad tape document")

type document struct {
	Pointer int                `json:"pointer" yaml:"pointer"`
	Cells   []counters.Counter `json:"cells" yaml:"cells"`
}

func (t *Tape) document() document {
	return document{
		Pointer: t.pointer,
		Cells:   t.cells,
	}
}

func (t *Tape) fromDocument(doc document) error {
	if doc.Pointer < 0 {
		return fmt.Errorf("%w: negative pointer %d", ErrBadDocument, doc.Pointer)
	}
	t.pointer = doc.Pointer
	t.cells = doc.Cells
	return nil
}

func (t *Tape) MarshalJSON() ([]byte, error) {
	doc := t.document()
	if doc.Cells == nil {
		doc.Cells = []counters.Counter{}
	}
	return json.Marshal(doc)
}

func (t *Tape) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return t.fromDocument(doc)
}

func (t *Tape) MarshalYAML() (any, error) {
	doc := t.document()
	if doc.Cells == nil {
		doc.Cells = []counters.Counter{}
	}
	return doc, nil
}

func (t *Tape) UnmarshalYAML(node *yaml.Node) error {
	var doc document
	if err := node.Decode(&doc); err != nil {
		return err
	}
	return t.fromDocument(doc)
}

func (t *Tape) GobEncode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(t.document()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tape) GobDecode(data []byte) error {
	var doc document
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return err
	}
	return t.fromDocument(doc)
}
