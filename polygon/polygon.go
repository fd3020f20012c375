// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polygon builds closed outlines (regular polygons and
// axis-aligned rectangles) with optional uniform corner rounding,
// exported as an ordered sequence of bezier.Bezier segments.
package polygon

import (
	"math"

	"github.com/rcoreilly/diagram/bezier"
	"github.com/rcoreilly/diagram/geom"
)

// Polygon describes a closed outline: a center, a vertex ring given by
// per-vertex radius/angle pairs, an optional uniform corner-rounding
// radius, and a stroke offset. AsPaths and BBox do not read StrokeOffset:
// the outline they produce always follows the nominal vertex ring.
type Polygon struct {
	Center       geom.Point
	VertexRadius []float64 // per-vertex radius from Center
	VertexAngle  []float64 // per-vertex angle, degrees, matching VertexRadius
	Round        float64   // uniform corner-rounding radius, 0 = sharp corners
	StrokeOffset float64
}

// Regular builds a regular polygon of n sides, circumradius radius,
// centered at center, with the first vertex at angle startDeg degrees.
func Regular(center geom.Point, n int, radius, startDeg float64) Polygon {
	p := Polygon{Center: center, VertexRadius: make([]float64, n), VertexAngle: make([]float64, n)}
	for i := 0; i < n; i++ {
		p.VertexRadius[i] = radius
		p.VertexAngle[i] = startDeg + float64(i)*360/float64(n)
	}
	return p
}

// Rectangle builds an axis-aligned rectangle of the given width and
// height, centered at center, as a 4-vertex polygon (corner vertices,
// not edge midpoints), with optional rounding applied uniformly.
func Rectangle(center geom.Point, w, h, round float64) Polygon {
	hw, hh := w/2, h/2
	corners := []geom.Point{
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
	}
	p := Polygon{Center: center, Round: round}
	for _, c := range corners {
		d := c.Sub(center)
		p.VertexRadius = append(p.VertexRadius, d.Len())
		p.VertexAngle = append(p.VertexAngle, math.Atan2(d.Y, d.X)*180/math.Pi)
	}
	return p
}

func (p Polygon) vertex(i int) geom.Point {
	r := p.VertexRadius[i]
	a := p.VertexAngle[i] * math.Pi / 180
	return p.Center.Add(geom.Pt(r*math.Cos(a), r*math.Sin(a)))
}

// roundRadiusFor returns min(p.Round, half the length of each adjacent
// edge at vertex i), so a rounding radius never overruns a short edge.
func (p Polygon) roundRadiusFor(i int) float64 {
	n := len(p.VertexRadius)
	prev := p.vertex((i - 1 + n) % n)
	cur := p.vertex(i)
	next := p.vertex((i + 1) % n)
	edgeIn := cur.Distance(prev)
	edgeOut := cur.Distance(next)
	r := p.Round
	if r > edgeIn/2 {
		r = edgeIn / 2
	}
	if r > edgeOut/2 {
		r = edgeOut / 2
	}
	return r
}

// AsPaths returns the ordered list of Beziers (lines, plus rounded
// cubics at each vertex when Round > 0) forming the closed outline.
func (p Polygon) AsPaths() []bezier.Bezier {
	n := len(p.VertexRadius)
	if n == 0 {
		return nil
	}
	if p.Round <= 0 {
		out := make([]bezier.Bezier, 0, n)
		for i := 0; i < n; i++ {
			a := p.vertex(i)
			b := p.vertex((i + 1) % n)
			out = append(out, bezier.NewLine(a, b))
		}
		return out
	}

	corners := make([]bezier.Bezier, n)
	for i := 0; i < n; i++ {
		prev := p.vertex((i - 1 + n) % n)
		cur := p.vertex(i)
		next := p.vertex((i + 1) % n)
		r := p.roundRadiusFor(i)
		v0 := cur.Sub(prev) // edge direction arriving at cur
		v1 := cur.Sub(next) // edge direction arriving at cur from next
		corners[i] = bezier.OfRoundCorner(cur, v0, v1, r)
	}

	out := make([]bezier.Bezier, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, corners[i])
		out = append(out, bezier.NewLine(corners[i].P1, corners[(i+1)%n].P0))
	}
	return out
}

// BBox returns the bounding box of the polygon's vertex ring (ignoring
// rounding, which only ever shrinks the outline inward).
func (p Polygon) BBox() geom.BBox {
	if len(p.VertexRadius) == 0 {
		return geom.NoneBBox()
	}
	b := geom.NoneBBox()
	for i := range p.VertexRadius {
		v := p.vertex(i)
		b.X = b.X.Include(v.X)
		b.Y = b.Y.Include(v.Y)
	}
	return b
}
