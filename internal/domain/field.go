package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a single optional value in a request body. Set reports whether the
// key was present at all; Malformed reports that it was present with a JSON
// type that does not fit T.
type Field[T any] struct {
	Value     T
	Set       bool
	Malformed bool
}

// Some returns a present, well-formed field.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	var zero T
	f.Value = zero
	f.Malformed = false
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		f.Value = zero
		f.Malformed = true
	}
	return nil
}

// decodeFields fills each field from the value stored under exactly its wire
// name. Keys that differ only in case are not matched.
func decodeFields(data []byte, fields map[string]json.Unmarshaler) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, f := range fields {
		v, ok := raw[name]
		if !ok {
			continue
		}
		if err := f.UnmarshalJSON(v); err != nil {
			return err
		}
	}
	return nil
}

// overlay writes the field into dst when present and records malformed input.
func overlay[T any](f Field[T], dst *T, name string, bad fieldSet) {
	if !f.Set {
		return
	}
	*dst = f.Value
	if f.Malformed {
		bad.add(name)
	}
}

type fieldSet map[string]struct{}

func (s fieldSet) add(name string) {
	s[name] = struct{}{}
}

func (s fieldSet) has(name string) bool {
	_, ok := s[name]
	return ok
}
