// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

// Schema is the set of recognized style names and the Kind each
// parses as, playing the role gi's reflection-driven StyledFields cache
// plays for its widget structs: a declared, closed vocabulary the
// cascade looks values up against. Unlike gi's struct-tag reflection,
// this module's element set is fixed and small enough that a plain
// map of name -> prototype value is the idiomatic fit (see DESIGN.md).
type Schema map[string]Value

// DefaultSchema is the recognized style attribute set (§6's table).
func DefaultSchema() Schema {
	return Schema{
		"debug":       NewString(""),
		"bbox":        NewFloatVector(),
		"grid":        NewIntArray(4),
		"gridx":       NewIntArray(2),
		"gridy":       NewIntArray(2),
		"place":       NewFloatArray(2),
		"anchor":      NewFloatArray(2),
		"expand":      NewFloatArray(2),
		"rotate":      NewFloat(0),
		"scale":       NewFloat(1),
		"translate":   NewFloatArray(2),
		"pad":         NewFloatArray(4),
		"margin":      NewFloatArray(4),
		"bg":          NewRGB(),
		"bordercolor": NewRGB(),
		"borderwidth": NewFloat(0),
		"borderround": NewFloat(0),
	}
}

// Inheritable marks style names whose resolved value is inherited by
// descendants that do not set their own (CSS-like cascade, per gi's own
// "which CSS properties are inherited" modeling in style.go).
var Inheritable = map[string]bool{
	"bordercolor": true,
	"bg":          true,
}

// ElementStyle holds the resolved, per-element style values produced by
// cascade.
type ElementStyle struct {
	schema Schema
	values map[string]Value
}

// NewElementStyle builds an empty ElementStyle bound to schema, whose
// Get calls fall back to schema's prototype (default) value for any
// name not explicitly Set.
func NewElementStyle(schema Schema) *ElementStyle {
	return &ElementStyle{schema: schema, values: map[string]Value{}}
}

// Inherit copies every Inheritable value from parent that this style
// has not already set, used at the start of processing each element
// during cascade (§4.10, "after cascade... named style values").
func (s *ElementStyle) Inherit(parent *ElementStyle) {
	if parent == nil {
		return
	}
	for name := range Inheritable {
		if _, set := s.values[name]; set {
			continue
		}
		if v, ok := parent.values[name]; ok {
			s.values[name] = v
		}
	}
}

// Set parses raw against name's declared Kind and stores it, returning
// an error if name is not in the schema or raw fails to parse.
func (s *ElementStyle) Set(name, raw string) error {
	proto, ok := s.schema[name]
	if !ok {
		return errUnknownStyleName(name)
	}
	v := proto
	if err := v.ParseString(raw); err != nil {
		return err
	}
	s.values[name] = v
	return nil
}

// Get returns the resolved value for name: an explicitly set value, or
// else the schema's default prototype.
func (s *ElementStyle) Get(name string) (Value, bool) {
	if v, ok := s.values[name]; ok {
		return v, true
	}
	v, ok := s.schema[name]
	return v, ok
}

type unknownStyleNameError string

func (e unknownStyleNameError) Error() string { return "style: unknown name " + string(e) }

func errUnknownStyleName(name string) error { return unknownStyleNameError(name) }
