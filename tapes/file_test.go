package tapes

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/bfvm/counters"
)

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	big := counters.FromUint64(math.MaxUint64).Increment()

	for _, name := range []string{"tape.json", "tape.yaml", "tape.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			tape := New(counters.FromUint64(3), counters.Zero, big)
			tape.MoveRight()
			tape.MoveRight()
			tape.MoveRight()
			tape.MoveRight()
			if err := Save(path, tape); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
				t.Fatalf("temp file left behind: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Pointer() != 4 {
				t.Fatalf("got %d", loaded.Pointer())
			}
			if loaded.Len() != 3 {
				t.Fatalf("got %d", loaded.Len())
			}
			if !loaded.ReadAt(2).Equal(big) {
				t.Fatalf("got %v", loaded.ReadAt(2))
			}
		})
	}
}

func TestLoadBadPointer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"pointer": -1, "cells": []}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrBadDocument) {
		t.Fatalf("got %v", err)
	}
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := Save(path, New()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\n  \"pointer\": 0,\n  \"cells\": []\n}" {
		t.Fatalf("got %s", data)
	}
}
