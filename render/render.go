// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns a resolved element tree into an ordered sequence
// of drawing primitives, deliberately stopping short of an XML/SVG
// emitter (out of scope; see §1).
package render

import (
	"fmt"
	"strings"

	"github.com/rcoreilly/diagram/bezier"
	"github.com/rcoreilly/diagram/colorname"
	"github.com/rcoreilly/diagram/geom"
)

// Kind enumerates the primitive shapes Emit can produce.
type Kind int

const (
	FillPolygon Kind = iota
	StrokePolygon
	TransformGroupStart
	TransformGroupEnd
	DrawPath
)

// Primitive is one emitted drawing instruction.
type Primitive struct {
	Kind      Kind
	ElementID string
	Path      []bezier.Bezier
	Color     colorname.RGB
	Width     float64 // stroke width, StrokePolygon only
	Transform geom.Transform
}

// Drawable is one element's resolved drawing data (background fill,
// own outline path, border stroke, content transform) plus its
// children's Drawables. The caller builds it (element.Diagram.Drawable)
// so this package has no import-cycle dependency on element.
type Drawable struct {
	ID          string
	Fill        Polygon
	HasFill     bool
	Path        []bezier.Bezier // leaf shape's own outline (circle/polygon/path), distinct from Fill/Border's bbox rect
	HasPath     bool
	Border      Polygon
	HasBorder   bool
	BorderWidth float64
	Transform   geom.Transform
	Children    []Drawable
}

// Polygon is the minimal shape of polygon.Polygon this package needs,
// redeclared here to avoid a dependency from render on polygon's
// internal vertex representation; callers pass the already-built paths.
type Polygon struct {
	Paths []bezier.Bezier
	Color colorname.RGB
}

// Emit walks d and its children in document order, producing the
// primitive sequence: background fill, its own outline path, a transform-group bracket around
// the content (and recursively, its children), then the border stroke.
func Emit(d Drawable) []Primitive {
	var out []Primitive
	emitInto(d, &out)
	return out
}

func emitInto(d Drawable, out *[]Primitive) {
	if d.HasFill {
		*out = append(*out, Primitive{Kind: FillPolygon, ElementID: d.ID, Path: d.Fill.Paths, Color: d.Fill.Color})
	}
	if d.HasPath {
		*out = append(*out, Primitive{Kind: DrawPath, ElementID: d.ID, Path: d.Path})
	}
	*out = append(*out, Primitive{Kind: TransformGroupStart, ElementID: d.ID, Transform: d.Transform})
	for _, c := range d.Children {
		emitInto(c, out)
	}
	*out = append(*out, Primitive{Kind: TransformGroupEnd, ElementID: d.ID})
	if d.HasBorder {
		*out = append(*out, Primitive{Kind: StrokePolygon, ElementID: d.ID, Path: d.Border.Paths, Color: d.Border.Color, Width: d.BorderWidth})
	}
}

// DebugString renders primitives as a deterministic, human-readable
// dump, one line per primitive, used by tests in place of a real
// emitter.
func DebugString(primitives []Primitive) string {
	var b strings.Builder
	for _, p := range primitives {
		switch p.Kind {
		case FillPolygon:
			fmt.Fprintf(&b, "fill %s color=%s segments=%d\n", p.ElementID, p.Color.Hex(), len(p.Path))
		case StrokePolygon:
			fmt.Fprintf(&b, "stroke %s color=%s width=%g segments=%d\n", p.ElementID, p.Color.Hex(), p.Width, len(p.Path))
		case TransformGroupStart:
			fmt.Fprintf(&b, "group-start %s %s\n", p.ElementID, p.Transform.String())
		case TransformGroupEnd:
			fmt.Fprintf(&b, "group-end %s\n", p.ElementID)
		case DrawPath:
			fmt.Fprintf(&b, "path %s segments=%d\n", p.ElementID, len(p.Path))
		}
	}
	return b.String()
}
