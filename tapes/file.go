package tapes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the file format from the path extension. Anything that is not YAML is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

func Load(path string) (*Tape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tape := new(Tape)
	switch FormatOf(path) {
	case YAML:
		err = yaml.Unmarshal(data, tape)
	default:
		err = json.Unmarshal(data, tape)
	}
	if err != nil {
		return nil, fmt.Errorf("load tape %s: %w", path, err)
	}
	return tape, nil
}

// Save writes the tape to a temporary file and renames it over path.
func Save(path string, tape *Tape) error {
	var data []byte
	var err error
	switch FormatOf(path) {
	case YAML:
		data, err = yaml.Marshal(tape)
	default:
		data, err = json.MarshalIndent(tape, "", "  ")
	}
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
