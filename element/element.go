// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element builds and resolves the diagram's element tree: an
// arena of Elements addressed by stable Handles, constructed from a
// markup.EventReader, styled via the rule engine in package style, and
// laid out via packages grid/layout/layoutbox.
package element

import (
	"context"
	"strings"

	"github.com/rcoreilly/diagram/bezier"
	"github.com/rcoreilly/diagram/diagramerr"
	"github.com/rcoreilly/diagram/fontmetrics"
	"github.com/rcoreilly/diagram/geom"
	"github.com/rcoreilly/diagram/layoutbox"
	"github.com/rcoreilly/diagram/markup"
	"github.com/rcoreilly/diagram/polygon"
	"github.com/rcoreilly/diagram/style"
)

// Handle is a stable index into a Diagram's element arena. 0 is
// reserved as the invalid handle, so the zero Handle can signal
// "no parent"/"no target" without a separate bool.
type Handle uint32

const NoHandle Handle = 0

// TagKind enumerates the element tags this module understands.
type TagKind int

const (
	TagUnknown TagKind = iota
	TagDiagram
	TagLibrary
	TagDefs
	TagStyle
	TagRule
	TagGroup
	TagLayout
	TagMarker
	TagUse
	TagPath
	TagText
	TagRect
	TagCircle
	TagPolygon
)

var tagNames = map[string]TagKind{
	"diagram": TagDiagram,
	"library": TagLibrary,
	"defs":    TagDefs,
	"style":   TagStyle,
	"rule":    TagRule,
	"group":   TagGroup,
	"layout":  TagLayout,
	"marker":  TagMarker,
	"use":     TagUse,
	"path":    TagPath,
	"text":    TagText,
	"rect":    TagRect,
	"circle":  TagCircle,
	"polygon": TagPolygon,
}

func isContainerTag(k TagKind) bool {
	switch k {
	case TagDiagram, TagGroup, TagLayout, TagMarker, TagUse, TagDefs:
		return true
	}
	return false
}

// Element is one node of the tree.
type Element struct {
	Handle   Handle
	Tag      TagKind
	ID       string
	Classes  []string
	Depth    int
	Parent   Handle
	Children []Handle
	RawAttrs map[string]string
	Text     string

	Style *style.ElementStyle
	Box   layoutbox.Box

	ContentBBox geom.BBox // intrinsic content, pre-transform
	OuterBBox   geom.BBox // advertised desired bbox, post margin/border/padding
	Transform   geom.Transform

	// layout sub-structure, set on any element from its grid/gridx/gridy/
	// place attributes and read only when its parent is a TagLayout.
	gridSx, gridSy, gridEx, gridEy int
	hasGrid                       bool
	placeAt                       geom.Point
	hasPlace                      bool
}

// Diagram is the arena plus per-document state.
type Diagram struct {
	Elements []Element // index 0 unused, matching NoHandle
	ids      map[string]Handle
	Errors   diagramerr.List
	Schema   style.Schema
	Metrics  fontmetrics.Metrics

	Rules *style.RuleSet
}

// New returns an empty Diagram, ready for Build.
func New() *Diagram {
	return &Diagram{
		Elements: make([]Element, 1), // reserve index 0
		ids:      map[string]Handle{},
		Schema:   style.DefaultSchema(),
		Metrics:  fontmetrics.Estimator{},
	}
}

func (d *Diagram) elem(h Handle) *Element { return &d.Elements[h] }

func (d *Diagram) alloc(e Element) Handle {
	e.Handle = Handle(len(d.Elements))
	d.Elements = append(d.Elements, e)
	return e.Handle
}

// Lookup resolves an id to its Handle.
func (d *Diagram) Lookup(id string) (Handle, bool) {
	h, ok := d.ids[id]
	return h, ok
}

type buildFrame struct {
	handle  Handle
	skip    bool // true if this subtree is an unknown-tag skip
	skipTag string
}

// Build consumes r fully, constructing the element tree. Structural
// parser errors (from r.Next returning a non-nil error) abort
// immediately and are returned; everything else (unknown tags, bad
// attribute values) accumulates into d.Errors and the build continues.
func (d *Diagram) Build(ctx context.Context, r markup.EventReader) error {
	var stack []buildFrame
	depth := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch ev.Kind {
		case markup.StartElement:
			if len(stack) > 0 && stack[len(stack)-1].skip {
				stack = append(stack, buildFrame{skip: true, skipTag: ev.Tag})
				depth++
				continue
			}
			kind, known := tagNames[strings.ToLower(ev.Tag)]
			if !known {
				d.Errors.Add(&diagramerr.Error{
					Kind:      diagramerr.UnknownElement,
					ElementID: ev.Tag,
					Message:   "unrecognized element tag",
				})
				stack = append(stack, buildFrame{skip: true, skipTag: ev.Tag})
				depth++
				continue
			}
			var parent Handle
			if len(stack) > 0 {
				parent = stack[len(stack)-1].handle
			}
			h := d.buildElement(kind, ev, parent, depth)
			if parent != NoHandle {
				pe := d.elem(parent)
				pe.Children = append(pe.Children, h)
			}
			stack = append(stack, buildFrame{handle: h})
			depth++
		case markup.EndElement:
			if len(stack) == 0 {
				continue
			}
			stack = stack[:len(stack)-1]
			depth--
		case markup.Content:
			if len(stack) > 0 && !stack[len(stack)-1].skip {
				e := d.elem(stack[len(stack)-1].handle)
				e.Text += ev.Text
			}
		}
	}
	return nil
}

func (d *Diagram) buildElement(kind TagKind, ev markup.Event, parent Handle, depth int) Handle {
	e := Element{
		Tag:      kind,
		Parent:   parent,
		Depth:    depth,
		RawAttrs: map[string]string{},
		Style:    style.NewElementStyle(d.Schema),
	}
	if parent != NoHandle {
		e.Style.Inherit(d.elem(parent).Style)
	}
	for _, a := range ev.Attributes {
		e.RawAttrs[a.Name] = a.Value
		switch a.Name {
		case "id":
			e.ID = a.Value
		case "class":
			e.Classes = strings.Fields(a.Value)
		default:
			if _, ok := d.Schema[a.Name]; ok {
				if err := e.Style.Set(a.Name, a.Value); err != nil {
					d.Errors.Add(&diagramerr.Error{
						Kind:      diagramerr.ParseAttribute,
						ElementID: e.ID,
						Attribute: a.Name,
						Value:     a.Value,
					})
				}
			}
		}
	}
	if v, ok := e.RawAttrs["grid"]; ok {
		e.hasGrid = parseGridSpan(v, &e)
	}
	// gridx/gridy place a single axis independently of the other,
	// layering over (or standing in for) a combined "grid" attr.
	if v, ok := e.RawAttrs["gridx"]; ok {
		if nums, ok2 := parseInts(v); ok2 && len(nums) == 2 {
			e.gridSx, e.gridEx = nums[0], nums[1]
			e.hasGrid = true
		}
	}
	if v, ok := e.RawAttrs["gridy"]; ok {
		if nums, ok2 := parseInts(v); ok2 && len(nums) == 2 {
			e.gridSy, e.gridEy = nums[0], nums[1]
			e.hasGrid = true
		}
	}
	if v, ok := e.RawAttrs["place"]; ok {
		e.hasPlace = true
		e.placeAt = parsePoint(v)
	}
	e.Box = boxFromStyle(e.Style)

	h := d.alloc(e)
	if e.ID != "" {
		d.ids[e.ID] = h
	}
	return h
}

// parseInts parses a whitespace/comma-separated list of (possibly
// negative) integers, returning ok=false if any field isn't one.
func parseInts(v string) ([]int, bool) {
	fields := strings.Fields(strings.ReplaceAll(v, ",", " "))
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n := 0
		neg := false
		for i, c := range f {
			if i == 0 && c == '-' {
				neg = true
				continue
			}
			if c < '0' || c > '9' {
				return nil, false
			}
			n = n*10 + int(c-'0')
		}
		if neg {
			n = -n
		}
		nums = append(nums, n)
	}
	return nums, true
}

func parseGridSpan(v string, e *Element) bool {
	nums, ok := parseInts(v)
	if !ok {
		return false
	}
	switch len(nums) {
	case 2:
		e.gridSx, e.gridSy = nums[0], nums[1]
		e.gridEx, e.gridEy = nums[0]+1, nums[1]+1
	case 4:
		e.gridSx, e.gridSy, e.gridEx, e.gridEy = nums[0], nums[1], nums[2], nums[3]
	default:
		return false
	}
	return true
}

func parsePoint(v string) geom.Point {
	fields := strings.Fields(strings.ReplaceAll(v, ",", " "))
	var x, y float64
	if len(fields) > 0 {
		x = parseFloatLoose(fields[0])
	}
	if len(fields) > 1 {
		y = parseFloatLoose(fields[1])
	}
	return geom.Pt(x, y)
}

func parseFloatLoose(s string) float64 {
	var f float64
	var sign float64 = 1
	var frac float64 = 0
	var fracDiv float64 = 1
	seenDot := false
	for i, c := range s {
		if i == 0 && c == '-' {
			sign = -1
			continue
		}
		if c == '.' {
			seenDot = true
			continue
		}
		if c < '0' || c > '9' {
			continue
		}
		d := float64(c - '0')
		if !seenDot {
			f = f*10 + d
		} else {
			fracDiv *= 10
			frac += d / fracDiv
		}
	}
	return sign * (f + frac)
}

func boxFromStyle(s *style.ElementStyle) layoutbox.Box {
	b := layoutbox.DefaultBox
	if v, ok := s.Get("pad"); ok {
		if fs, ok2 := v.Floats(); ok2 {
			b.Padding = mboxFrom(fs)
		}
	}
	if v, ok := s.Get("margin"); ok {
		if fs, ok2 := v.Floats(); ok2 {
			b.Margin = mboxFrom(fs)
		}
	}
	if v, ok := s.Get("borderwidth"); ok {
		if fs, ok2 := v.Floats(); ok2 && len(fs) > 0 {
			b.BorderWidth = fs[0]
		}
	}
	if v, ok := s.Get("rotate"); ok {
		if fs, ok2 := v.Floats(); ok2 && len(fs) > 0 {
			b.RotationDeg = fs[0]
		}
	}
	if v, ok := s.Get("scale"); ok {
		if fs, ok2 := v.Floats(); ok2 && len(fs) > 0 {
			b.Scale = fs[0]
		}
	} else {
		b.Scale = 1
	}
	if v, ok := s.Get("anchor"); ok {
		if fs, ok2 := v.Floats(); ok2 && len(fs) >= 2 {
			b.AnchorX, b.AnchorY = fs[0], fs[1]
		}
	}
	if v, ok := s.Get("expand"); ok {
		if fs, ok2 := v.Floats(); ok2 && len(fs) >= 2 {
			b.ExpandX, b.ExpandY = fs[0], fs[1]
		}
	}
	return b
}

func mboxFrom(fs []float64) geom.MBox {
	tile := func(i int) float64 { return fs[i%len(fs)] }
	if len(fs) == 0 {
		return geom.MBox{}
	}
	return geom.MBox{
		X: geom.Margin{Low: tile(0), High: tile(1)},
		Y: geom.Margin{Low: tile(2), High: tile(3)},
	}
}

// intrinsicBBox computes an element's own content bbox per §4.10.1,
// given its already-resolved children (whose OuterBBox is final).
func (d *Diagram) intrinsicBBox(e *Element) geom.BBox {
	if v, ok := e.Style.Get("bbox"); ok && !v.IsNone() {
		if fs, ok2 := v.Floats(); ok2 && len(fs) > 0 {
			switch e.Tag {
			case TagCircle:
				r := fs[0]
				return geom.BBoxOf(-r, -r, r, r)
			default:
				switch len(fs) {
				case 1:
					return geom.BBoxOf(0, 0, fs[0], fs[0])
				case 2:
					return geom.BBoxOf(0, 0, fs[0], fs[1])
				default:
					return geom.BBoxOf(fs[0], fs[1], fs[2], fs[3])
				}
			}
		}
	}

	switch e.Tag {
	case TagCircle:
		return geom.BBoxOf(-1, -1, 1, 1)
	case TagPolygon:
		return polygon.Regular(geom.Origin, 6, 1, 0).BBox()
	case TagPath:
		return pathBBox(e.RawAttrs["points"])
	case TagText:
		sz := 12.0
		w, asc, desc := d.Metrics.Measure(e.Text, fontmetrics.Style{SizePoints: sz})
		return geom.BBoxOf(0, -asc, w, desc)
	default:
		if isContainerTag(e.Tag) {
			out := geom.NoneBBox()
			for _, ch := range e.Children {
				out = out.Union(d.elem(ch).OuterBBox)
			}
			return out
		}
		return geom.NoneBBox()
	}
}

// pathSegments parses a path's "points" attribute (a flat x0 y0 x1 y1
// ... list) into the straight-line segments joining them.
func pathSegments(points string) []bezier.Bezier {
	fields := strings.Fields(strings.ReplaceAll(points, ",", " "))
	var pts []geom.Point
	for i := 0; i+1 < len(fields); i += 2 {
		pts = append(pts, geom.Pt(parseFloatLoose(fields[i]), parseFloatLoose(fields[i+1])))
	}
	var segs []bezier.Bezier
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, bezier.NewLine(pts[i], pts[i+1]))
	}
	return segs
}

func pathBBox(points string) geom.BBox {
	out := geom.NoneBBox()
	for _, s := range pathSegments(points) {
		out = out.Union(geom.BBoxOf(s.P0.X, s.P0.Y, s.P0.X, s.P0.Y))
		out = out.Union(geom.BBoxOf(s.P1.X, s.P1.Y, s.P1.X, s.P1.Y))
	}
	return out
}
