// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagramerr defines the typed error kinds accumulated during
// markup parsing, style cascade and geometry resolution.
package diagramerr

import "fmt"

// Kind is a sentinel error category, usable with errors.Is.
type Kind int

const (
	ParseAttribute Kind = iota
	UnknownElement
	UnresolvedReference
	GridUnresolved
	SingularRelaxation
	GeometryDegenerate
)

func (k Kind) String() string {
	switch k {
	case ParseAttribute:
		return "ParseAttribute"
	case UnknownElement:
		return "UnknownElement"
	case UnresolvedReference:
		return "UnresolvedReference"
	case GridUnresolved:
		return "GridUnresolved"
	case SingularRelaxation:
		return "SingularRelaxation"
	case GeometryDegenerate:
		return "GeometryDegenerate"
	}
	return "Unknown"
}

// Error is the concrete error type accumulated in an element or
// document error list.
type Error struct {
	Kind      Kind
	ElementID string
	Attribute string
	Value     string
	Message   string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ParseAttribute:
		return fmt.Sprintf("%s: element %q: attribute %q: cannot parse %q", e.Kind, e.ElementID, e.Attribute, e.Value)
	case UnknownElement:
		return fmt.Sprintf("%s: %q: %s", e.Kind, e.ElementID, e.Message)
	case UnresolvedReference:
		return fmt.Sprintf("%s: element %q references undefined id %q", e.Kind, e.ElementID, e.Value)
	default:
		if e.Message != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Message)
		}
		return e.Kind.String()
	}
}

// Is implements errors.Is against a bare Kind sentinel comparison: a
// target *Error with only Kind set (and all other fields zero) matches
// any Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.ElementID == "" && t.Attribute == "" && t.Value == "" && t.Message == ""
}

// Sentinel returns a bare *Error usable with errors.Is(err,
// Sentinel(Kind)).
func Sentinel(k Kind) *Error { return &Error{Kind: k} }

// List accumulates errors without aborting the operation that produced
// them, per the "best-effort, non-fatal" propagation rule.
type List struct {
	Errors []*Error
}

func (l *List) Add(e *Error) { l.Errors = append(l.Errors, e) }

func (l *List) HasErrors() bool { return len(l.Errors) > 0 }
