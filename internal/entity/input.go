// Package entity turns a partially filled tool input into a committed
// record: it finds missing fields, validates the merged input, assigns
// an identity, and appends the record to the store.
package entity

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"

	"github.com/spf13/cast"
)

// Input is the raw argument bag of a tool call, as decoded from JSON.
type Input map[string]any

// NewInput copies args so that merging never mutates the caller's map.
func NewInput(args map[string]any) Input {
	in := make(Input, len(args))
	maps.Copy(in, args)
	return in
}

// Has reports whether key was supplied at all, even as null.
func (in Input) Has(key string) bool {
	_, ok := in[key]
	return ok
}

// set reports whether key holds a non-null, non-empty-string value.
func (in Input) set(key string) bool {
	return !blank(in, key)
}

// String returns the value as a string, or "" when absent.
func (in Input) String(key string) string {
	v, ok := in[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

// Float returns the value as a float64. ok is false when the value is
// unset; err is non-nil when it is set but not numeric.
func (in Input) Float(key string) (v float64, ok bool, err error) {
	if !in.set(key) {
		return 0, false, nil
	}
	f, err := cast.ToFloat64E(in[key])
	return f, err == nil, err
}

// Int is Float for integer values. A fractional number is an error,
// not a truncation.
func (in Input) Int(key string) (v int, ok bool, err error) {
	if !in.set(key) {
		return 0, false, nil
	}
	f, err := cast.ToFloat64E(in[key])
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%v is not a whole number", in[key])
	}
	return int(f), true, nil
}

// Bool is Float for boolean values.
func (in Input) Bool(key string) (v bool, ok bool, err error) {
	if !in.set(key) {
		return false, false, nil
	}
	b, err := cast.ToBoolE(in[key])
	return b, err == nil, err
}

// Merge copies the allowed keys present in content into in, overwriting.
// Only requested fields are taken from an elicitation reply.
func (in Input) Merge(content map[string]any, allowed []string) {
	for _, key := range allowed {
		if v, ok := content[key]; ok {
			in[key] = v
		}
	}
}

// falsy mirrors a loose truthiness test: absent, null, false, "", 0
// and NaN all count as missing.
func falsy(in Input, key string) bool {
	v, ok := in[key]
	if !ok || v == nil {
		return true
	}
	switch x := v.(type) {
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	return false
}

// blank treats only absent, null and "" as missing; false and 0 are values.
func blank(in Input, key string) bool {
	v, ok := in[key]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}

// absent treats only a missing key as missing.
func absent(in Input, key string) bool {
	return !in.Has(key)
}
