package jsonpatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffObjects(t *testing.T) {
	a := map[string]any{"keep": 1.0, "gone": "x", "changed": 2.0}
	b := map[string]any{"keep": 1.0, "changed": 3.0, "new": true}

	got := Diff(a, b)
	want := []Op{
		{Op: "remove", Path: "/gone"},
		{Op: "replace", Path: "/changed", Value: 3.0},
		{Op: "add", Path: "/new", Value: true},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("unexpected patch (-want +got):\n%s", d)
	}
}

func TestDiffArrays(t *testing.T) {
	a := []any{"a", "b", "c"}
	b := []any{"a", "x"}

	got := Diff(a, b)
	want := []Op{
		{Op: "replace", Path: "/1", Value: "x"},
		{Op: "remove", Path: "/2"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("unexpected patch (-want +got):\n%s", d)
	}

	got = Diff(b, a)
	want = []Op{
		{Op: "replace", Path: "/1", Value: "b"},
		{Op: "add", Path: "/2", Value: "c"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("unexpected patch (-want +got):\n%s", d)
	}
}

func TestDiffEscapesKeys(t *testing.T) {
	got := Diff(map[string]any{}, map[string]any{"a/b~c": 1.0})
	if len(got) != 1 || got[0].Path != "/a~1b~0c" {
		t.Fatalf("expected escaped path, got %+v", got)
	}
}

func TestDiffValuesIdentical(t *testing.T) {
	type cost struct {
		Total float64 `json:"total"`
	}
	ops, err := DiffValues(cost{Total: 1000}, cost{Total: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ops == nil || len(ops) != 0 {
		t.Fatalf("expected empty non-nil patch, got %#v", ops)
	}
}

func TestDiffValuesStructs(t *testing.T) {
	type cost struct {
		Total    float64 `json:"total"`
		Discount float64 `json:"discount"`
	}
	ops, err := DiffValues(cost{Total: 1000}, cost{Total: 1350, Discount: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Op{
		{Op: "replace", Path: "/discount", Value: 150.0},
		{Op: "replace", Path: "/total", Value: 1350.0},
	}
	if d := cmp.Diff(want, ops); d != "" {
		t.Fatalf("unexpected patch (-want +got):\n%s", d)
	}
}
