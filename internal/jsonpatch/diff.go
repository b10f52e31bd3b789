package jsonpatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Op is a single RFC 6902 operation.
type Op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// DiffValues marshals a and b to JSON and returns the patch turning a into b.
func DiffValues(a, b any) ([]Op, error) {
	da, err := decode(a)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	db, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode target: %w", err)
	}
	ops := Diff(da, db)
	if ops == nil {
		ops = []Op{}
	}
	return ops, nil
}

// Diff computes the patch that transforms a into b. Both must be the result
// of unmarshalling JSON into an interface{}. Object keys are visited in
// sorted order so the output is stable.
func Diff(a, b any) []Op {
	return diff(a, b, "")
}

func diff(a, b any, path string) []Op {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Op{{Op: "replace", Path: path, Value: b}}
	}

	switch av := a.(type) {
	case map[string]any:
		if bv, ok := b.(map[string]any); ok {
			return diffObjects(av, bv, path)
		}
	case []any:
		if bv, ok := b.([]any); ok {
			return diffArrays(av, bv, path)
		}
	default:
		if a == b {
			return nil
		}
	}
	return []Op{{Op: "replace", Path: path, Value: b}}
}

func diffObjects(a, b map[string]any, path string) []Op {
	var ops []Op

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, Op{Op: "remove", Path: path + "/" + escapeKey(k)})
		}
	}

	for _, k := range sortedKeys(b) {
		child := path + "/" + escapeKey(k)
		av, ok := a[k]
		if !ok {
			ops = append(ops, Op{Op: "add", Path: child, Value: b[k]})
			continue
		}
		ops = append(ops, diff(av, b[k], child)...)
	}
	return ops
}

func diffArrays(a, b []any, path string) []Op {
	var ops []Op

	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		ops = append(ops, diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}
	// Trailing removals run from the end so earlier indices stay valid.
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, Op{Op: "remove", Path: path + "/" + strconv.Itoa(i)})
	}
	for i := common; i < len(b); i++ {
		ops = append(ops, Op{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}
	return ops
}

func decode(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
