package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test2.cue", "testdata/test.cue"}, testSchema)

	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "foo" {
		t.Fatalf("got %v", str)
	}

	list, err := First[[]int](loader, "list")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %v", list)
	}

	n, err := First[int](loader, "missing")
	if err != nil || n != 0 {
		t.Fatalf("got %v %v", n, err)
	}

	if _, err := First[int](loader, "str"); err == nil {
		t.Fatal("type mismatch should error")
	}
}
