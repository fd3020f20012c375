// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/rcoreilly/diagram/bezier"
	"github.com/rcoreilly/diagram/diagramerr"
	"github.com/rcoreilly/diagram/geom"
	"github.com/rcoreilly/diagram/layout"
	"github.com/rcoreilly/diagram/polygon"
	"github.com/rcoreilly/diagram/render"
	"github.com/rcoreilly/diagram/style"
)

// ApplyRules runs d.Rules (if set) over the element tree rooted at
// root, in document order, dispatching fired actions to apply. apply
// receives the element handle and the fired action index; typical
// actions set a named style value (see SetStyle).
func (d *Diagram) ApplyRules(root Handle, apply func(h Handle, action style.ActionIndex)) {
	if d.Rules == nil {
		return
	}
	app := d.Rules.NewApplicator()
	var walk func(h Handle)
	walk = func(h Handle) {
		app.Enter(int(h), func(ai style.ActionIndex) { apply(h, ai) })
		for _, c := range d.elem(h).Children {
			walk(c)
		}
		app.Leave()
	}
	walk(root)
}

// MatchByTag returns a style.MatchFunc that matches elements of the
// given tag (an addition to the id/class/depth predicates named in the
// distilled spec, since per-tag rules are a natural and common case —
// see scenario 8).
func (d *Diagram) MatchByTag(tag TagKind) style.MatchFunc {
	return func(node int) bool { return d.elem(Handle(node)).Tag == tag }
}

func (d *Diagram) MatchByID(id string) style.MatchFunc {
	return func(node int) bool { return d.elem(Handle(node)).ID == id }
}

func (d *Diagram) MatchByClass(class string) style.MatchFunc {
	return func(node int) bool {
		for _, c := range d.elem(Handle(node)).Classes {
			if c == class {
				return true
			}
		}
		return false
	}
}

// SetStyle sets name=raw on h's style (recording a ParseAttribute error
// if that fails) and re-derives its Box; apply callbacks passed to
// ApplyRules typically call it.
func (d *Diagram) SetStyle(h Handle, name, raw string) {
	e := d.elem(h)
	if err := e.Style.Set(name, raw); err != nil {
		d.Errors.Add(&diagramerr.Error{Kind: diagramerr.ParseAttribute, ElementID: e.ID, Attribute: name, Value: raw})
	}
	e.Box = boxFromStyle(e.Style)
}

// Resolve runs the two-pass geometry resolution (§4.10 step 2) over the
// subtree rooted at root, after style cascade (ApplyRules, if any) has
// already run.
func (d *Diagram) Resolve(root Handle, within geom.BBox) {
	d.resolveBottomUp(root)
	d.resolveTopDown(root, within)
}

func (d *Diagram) resolveBottomUp(h Handle) {
	e := d.elem(h)
	for _, c := range e.Children {
		d.resolveBottomUp(c)
	}
	e.ContentBBox = d.intrinsicBBox(e)
	ref := e.ContentBBox.Center()
	e.OuterBBox = e.Box.DesiredOuter(e.ContentBBox, ref)
}

// resolveTopDown assigns each element a laid-out outer rectangle
// (outer, already positioned by the parent in parent-local coordinates)
// and derives its content_to_layout transform and, for containers, the
// rectangles handed down to children.
func (d *Diagram) resolveTopDown(h Handle, outer geom.BBox) {
	e := d.elem(h)
	ref := e.ContentBBox.Center()
	contentTransform := e.Box.ContentToLayout(outer, e.ContentBBox, ref)
	e.Transform = contentTransform

	if !isContainerTag(e.Tag) || len(e.Children) == 0 {
		return
	}

	inner := outer.SubMargin(e.Box.Margin)
	inner = inner.SubMargin(geom.UniformMBox(e.Box.BorderWidth))
	inner = inner.SubMargin(e.Box.Padding)

	if e.Tag == TagLayout {
		d.resolveLayoutContainer(e, inner)
		return
	}

	// plain Group/Marker/Use/Defs: children keep their own desired
	// outer bbox, centered on the content rect's center (a
	// simplified placement rule relative to the full grid/placed
	// machinery, which is reserved for tag=layout containers).
	for _, ch := range e.Children {
		child := d.elem(ch)
		childOuter := geom.BBoxCentered(inner.Center(), child.OuterBBox.Width(), child.OuterBBox.Height())
		d.resolveTopDown(ch, childOuter)
	}
}

func (d *Diagram) resolveLayoutContainer(e *Element, inner geom.BBox) {
	l := layout.New()
	placedChildren := map[Handle]bool{}
	for _, ch := range e.Children {
		child := d.elem(ch)
		if child.hasGrid {
			l.AddGridElement(int(ch), child.gridSx, child.gridSy, child.gridEx, child.gridEy,
				child.OuterBBox.Width(), child.OuterBBox.Height())
		} else if child.hasPlace {
			l.AddPlacedElement(int(ch), child.placeAt, child.OuterBBox.Center(), child.OuterBBox)
			placedChildren[ch] = true
		} else {
			// undeclared placement: placed in grid cell (0,0)-(1,1), the
			// first cell on each axis, so it still participates in the
			// minimal-extent computation rather than being lost.
			l.AddGridElement(int(ch), 0, 0, 1, 1, child.OuterBBox.Width(), child.OuterBBox.Height())
		}
	}
	res := l.Layout(inner)
	for _, ch := range e.Children {
		child := d.elem(ch)
		var childOuter geom.BBox
		if placedChildren[ch] {
			childOuter = l.PlacedRectangle(child.placeAt, child.OuterBBox.Center(), child.OuterBBox)
		} else if child.hasGrid {
			childOuter = l.GridBBox(child.gridSx, child.gridSy, child.gridEx, child.gridEy)
		} else {
			childOuter = l.GridBBox(0, 0, 1, 1)
		}
		childOuter = geom.BBox{
			X: geom.Range{Min: childOuter.X.Min + res.Translation.X, Max: childOuter.X.Max + res.Translation.X},
			Y: geom.Range{Min: childOuter.Y.Min + res.Translation.Y, Max: childOuter.Y.Max + res.Translation.Y},
		}
		d.resolveTopDown(ch, childOuter)
	}
}

// Drawable converts the resolved subtree rooted at h into a
// render.Drawable tree, ready for render.Emit.
func (d *Diagram) Drawable(h Handle) render.Drawable {
	e := d.elem(h)
	dr := render.Drawable{ID: e.ID, Transform: e.Transform}
	if e.ID == "" {
		dr.ID = tagLabel(e.Tag)
	}

	if bg, ok := e.Style.Get("bg"); ok {
		if c, ok2 := bg.RGB(); ok2 {
			dr.HasFill = true
			dr.Fill = render.Polygon{Paths: rectPaths(e.ContentBBox), Color: c}
		}
	}
	if bw, ok := e.Style.Get("borderwidth"); ok {
		if fs, ok2 := bw.Floats(); ok2 && len(fs) > 0 && fs[0] > 0 {
			color, _ := e.Style.Get("bordercolor")
			c, _ := color.RGB()
			dr.HasBorder = true
			dr.BorderWidth = fs[0]
			dr.Border = render.Polygon{Paths: rectPaths(e.ContentBBox), Color: c}
		}
	}
	if path, ok := shapeOutline(e); ok {
		dr.HasPath = true
		dr.Path = path
	}
	for _, ch := range e.Children {
		dr.Children = append(dr.Children, d.Drawable(ch))
	}
	return dr
}

func tagLabel(k TagKind) string {
	for name, kind := range tagNames {
		if kind == k {
			return name
		}
	}
	return "?"
}

// circleSegments is the vertex count used to approximate a circle as a
// regular polygon, matching the same approximation intrinsicBBox
// already leans on for a TagPolygon's default hexagon.
const circleSegments = 32

// shapeOutline returns a leaf shape's own drawn geometry: circle/
// polygon tags approximate their outline as a regular polygon sized to
// ContentBBox (the same simplified shape intrinsicBBox already
// computes the bbox from), and path tags replay their raw point list.
// Fill/Border only ever trace ContentBBox's bounding rectangle, so
// without this a circle/polygon/path with no bg/borderwidth draws
// nothing at all.
func shapeOutline(e *Element) ([]bezier.Bezier, bool) {
	var path []bezier.Bezier
	switch e.Tag {
	case TagCircle:
		r := e.ContentBBox.Width() / 2
		path = polygon.Regular(e.ContentBBox.Center(), circleSegments, r, 0).AsPaths()
	case TagPolygon:
		r := e.ContentBBox.Width() / 2
		path = polygon.Regular(e.ContentBBox.Center(), 6, r, 0).AsPaths()
	case TagPath:
		path = pathSegments(e.RawAttrs["points"])
	default:
		return nil, false
	}
	return path, len(path) > 0
}

func rectPaths(b geom.BBox) []bezier.Bezier {
	c := [4]geom.Point{
		{X: b.X.Min, Y: b.Y.Min},
		{X: b.X.Max, Y: b.Y.Min},
		{X: b.X.Max, Y: b.Y.Max},
		{X: b.X.Min, Y: b.Y.Max},
	}
	return []bezier.Bezier{
		bezier.NewLine(c[0], c[1]),
		bezier.NewLine(c[1], c[2]),
		bezier.NewLine(c[2], c[3]),
		bezier.NewLine(c[3], c[0]),
	}
}
