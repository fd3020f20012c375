// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout composes an X grid and a Y grid (package grid) with a
// set of freely "placed" children into a single 2-D layout, per §4.6.
package layout

import (
	"github.com/rcoreilly/diagram/geom"
	"github.com/rcoreilly/diagram/grid"
)

// GridElement is a child registered against the X and Y grids, spanning
// tracks [Sx,Ex) x [Sy,Ey) with a minimum content size of (W,H).
type GridElement struct {
	ID     int
	Sx, Ex int
	Sy, Ey int
	W, H   float64
}

// PlacedElement is a freely-positioned child: Pt is its target point in
// layout coordinates, RefPt is the point within its own bbox that Pt
// refers to, and BBox is its desired content-space bbox.
type PlacedElement struct {
	ID    int
	Pt    geom.Point
	RefPt geom.Point
	BBox  geom.BBox
}

// Layout composes grid-placed and freely-placed children.
type Layout struct {
	gridElems   []GridElement
	placedElems []PlacedElement

	xPositions map[int]float64
	yPositions map[int]float64
}

func New() *Layout {
	return &Layout{}
}

func (l *Layout) AddGridElement(id, sx, sy, ex, ey int, w, h float64) {
	l.gridElems = append(l.gridElems, GridElement{ID: id, Sx: sx, Ex: ex, Sy: sy, Ey: ey, W: w, H: h})
}

func (l *Layout) AddPlacedElement(id int, pt, refPt geom.Point, bbox geom.BBox) {
	l.placedElems = append(l.placedElems, PlacedElement{ID: id, Pt: pt, RefPt: refPt, BBox: bbox})
}

func (l *Layout) xRequests() []grid.CellRequest {
	reqs := make([]grid.CellRequest, len(l.gridElems))
	for i, g := range l.gridElems {
		reqs[i] = grid.CellRequest{Start: g.Sx, End: g.Ex, Size: g.W}
	}
	return reqs
}

func (l *Layout) yRequests() []grid.CellRequest {
	reqs := make([]grid.CellRequest, len(l.gridElems))
	for i, g := range l.gridElems {
		reqs[i] = grid.CellRequest{Start: g.Sy, End: g.Ey, Size: g.H}
	}
	return reqs
}

// DesiredGeometry returns the bbox enclosing both the minimal grid
// extent and the union of placed-child bboxes (each translated to its
// target point, relative to its own reference point).
func (l *Layout) DesiredGeometry() geom.BBox {
	out := geom.NoneBBox()

	if len(l.gridElems) > 0 {
		xs := grid.ResolveMinimal(l.xRequests())
		ys := grid.ResolveMinimal(l.yRequests())
		for _, g := range l.gridElems {
			out.X = out.X.Include(xs[g.Sx])
			out.X = out.X.Include(xs[g.Ex])
			out.Y = out.Y.Include(ys[g.Sy])
			out.Y = out.Y.Include(ys[g.Ey])
		}
	}

	for _, p := range l.placedElems {
		rect := placedRect(p)
		out = out.Union(rect)
	}

	return out
}

func placedRect(p PlacedElement) geom.BBox {
	offset := p.Pt.Sub(p.RefPt)
	return geom.BBox{
		X: geom.Range{Min: p.BBox.X.Min + offset.X, Max: p.BBox.X.Max + offset.X},
		Y: geom.Range{Min: p.BBox.Y.Min + offset.Y, Max: p.BBox.Y.Max + offset.Y},
	}
}

// Resolved is the outcome of Layout after fitting within a container:
// the resolved track positions on each axis, and a translation applied
// to every child, grid-positioned or placed.
type Resolved struct {
	XPositions map[int]float64
	YPositions map[int]float64
	Translation geom.Point
}

// Layout resizes the grid to fit within, relaxing if within is larger
// than the desired geometry, and computes the layout-to-content
// translation that centers content within it.
func (l *Layout) Layout(within geom.BBox) Resolved {
	desired := l.DesiredGeometry()

	xMin := grid.ResolveMinimal(l.xRequests())
	yMin := grid.ResolveMinimal(l.yRequests())

	xs := xMin
	ys := yMin

	if within.Width() > desired.Width()+1e-9 {
		xs = relaxAxis(l.gridElems, true, xMin, within.Width()-desired.Width())
	}
	if within.Height() > desired.Height()+1e-9 {
		ys = relaxAxis(l.gridElems, false, yMin, within.Height()-desired.Height())
	}

	resolved := geom.NoneBBox()
	for _, g := range l.gridElems {
		resolved.X = resolved.X.Include(xs[g.Sx]).Include(xs[g.Ex])
		resolved.Y = resolved.Y.Include(ys[g.Sy]).Include(ys[g.Ey])
	}
	for _, p := range l.placedElems {
		resolved = resolved.Union(placedRect(p))
	}
	tx, _ := geom.RangeOf(resolved.X.Min, resolved.X.Max).FitWithin(within.X, 0, 0)
	ty, _ := geom.RangeOf(resolved.Y.Min, resolved.Y.Max).FitWithin(within.Y, 0, 0)

	l.xPositions, l.yPositions = xs, ys

	return Resolved{XPositions: xs, YPositions: ys, Translation: geom.Pt(tx, ty)}
}

// relaxAxis builds a Resolver over the adjacent-track links implied by
// gridElems (projected onto one axis) and distributes the given slack
// uniformly (growth 1) across every segment, pinning the two extreme
// tracks at their minimal-placement positions plus zero and plus slack
// respectively.
func relaxAxis(elems []GridElement, xAxis bool, minimal map[int]float64, slack float64) map[int]float64 {
	tracks := map[int]bool{}
	for _, g := range elems {
		if xAxis {
			tracks[g.Sx] = true
			tracks[g.Ex] = true
		} else {
			tracks[g.Sy] = true
			tracks[g.Ey] = true
		}
	}
	ordered := sortedKeys(tracks)
	if len(ordered) < 2 {
		return minimal
	}

	var links []grid.Link
	for i := 0; i+1 < len(ordered); i++ {
		a, b := ordered[i], ordered[i+1]
		links = append(links, grid.Link{From: a, To: b, MinSize: minimal[b] - minimal[a], Growth: 1})
	}
	r := grid.NewResolver(links)
	first, last := ordered[0], ordered[len(ordered)-1]
	pins := map[int]float64{first: minimal[first], last: minimal[last] + slack}
	return r.Relax(pins, minimal)
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// GridBBox returns the resolved rectangle for a grid element's track
// span, after Layout has been called.
func (l *Layout) GridBBox(sx, sy, ex, ey int) geom.BBox {
	return geom.BBoxOf(l.xPositions[sx], l.yPositions[sy], l.xPositions[ex], l.yPositions[ey])
}

// PlacedRectangle returns the resolved rectangle for a freely-placed
// child, by point and reference point.
func (l *Layout) PlacedRectangle(pt, refPt geom.Point, bbox geom.BBox) geom.BBox {
	return placedRect(PlacedElement{Pt: pt, RefPt: refPt, BBox: bbox})
}
