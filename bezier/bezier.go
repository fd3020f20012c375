// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bezier implements linear, quadratic and cubic Bezier curves:
// construction, evaluation, bisection, sub-range extraction, arc and
// rounded-corner builders, and straightness-bounded flattening to line
// segments.
package bezier

import (
	"math"

	"github.com/rcoreilly/diagram/geom"
)

// Kind discriminates the three curve variants.
type Kind int

const (
	Line Kind = iota
	Quadratic
	Cubic
)

// Bezier is a tagged union over the three curve variants. P0 and P1 are
// always the endpoints; C0/C1 are meaningful only for their variant
// (Quadratic uses C0 as its single control point, Cubic uses both).
type Bezier struct {
	Kind   Kind
	P0, P1 geom.Point
	C0, C1 geom.Point
}

// NewLine builds a linear segment.
func NewLine(p0, p1 geom.Point) Bezier {
	return Bezier{Kind: Line, P0: p0, P1: p1}
}

// NewQuadratic builds a quadratic curve with control point c.
func NewQuadratic(p0, c, p1 geom.Point) Bezier {
	return Bezier{Kind: Quadratic, P0: p0, C0: c, P1: p1}
}

// NewCubic builds a cubic curve with control points c0, c1.
func NewCubic(p0, c0, c1, p1 geom.Point) Bezier {
	return Bezier{Kind: Cubic, P0: p0, C0: c0, C1: c1, P1: p1}
}

func (b Bezier) Endpoints() (geom.Point, geom.Point) { return b.P0, b.P1 }

// PointAt evaluates the Bernstein polynomial for the variant at
// parameter t.
func (b Bezier) PointAt(t float64) geom.Point {
	switch b.Kind {
	case Line:
		return b.P0.Scale(1 - t).Add(b.P1.Scale(t))
	case Quadratic:
		mt := 1 - t
		return b.P0.Scale(mt * mt).
			Add(b.C0.Scale(2 * mt * t)).
			Add(b.P1.Scale(t * t))
	default: // Cubic
		mt := 1 - t
		mt2 := mt * mt
		t2 := t * t
		return b.P0.Scale(mt2 * mt).
			Add(b.C0.Scale(3 * mt2 * t)).
			Add(b.C1.Scale(3 * mt * t2)).
			Add(b.P1.Scale(t2 * t))
	}
}

// TangentAt returns the derivative of PointAt at t. It is not
// normalized.
func (b Bezier) TangentAt(t float64) geom.Point {
	switch b.Kind {
	case Line:
		return b.P1.Sub(b.P0)
	case Quadratic:
		mt := 1 - t
		return b.C0.Sub(b.P0).Scale(2 * mt).Add(b.P1.Sub(b.C0).Scale(2 * t))
	default: // Cubic
		mt := 1 - t
		a := b.C0.Sub(b.P0).Scale(3 * mt * mt)
		c := b.C1.Sub(b.C0).Scale(6 * mt * t)
		d := b.P1.Sub(b.C1).Scale(3 * t * t)
		return a.Add(c).Add(d)
	}
}

// Bisect returns the pair of curves exactly representing the halves of
// b split at t=0.5.
func (b Bezier) Bisect() (Bezier, Bezier) {
	switch b.Kind {
	case Line:
		m := geom.VectorOf([]float64{1, 1}, 2, b.P0, b.P1)
		return NewLine(b.P0, m), NewLine(m, b.P1)
	case Quadratic:
		c0 := geom.VectorOf([]float64{1, 1}, 2, b.P0, b.C0)
		c1 := geom.VectorOf([]float64{1, 1}, 2, b.C0, b.P1)
		m := geom.VectorOf([]float64{1, 1}, 2, c0, c1)
		return NewQuadratic(b.P0, c0, m), NewQuadratic(m, c1, b.P1)
	default: // Cubic
		ab := geom.VectorOf([]float64{1, 1}, 2, b.P0, b.C0)
		bc := geom.VectorOf([]float64{1, 1}, 2, b.C0, b.C1)
		cd := geom.VectorOf([]float64{1, 1}, 2, b.C1, b.P1)
		abc := geom.VectorOf([]float64{1, 1}, 2, ab, bc)
		bcd := geom.VectorOf([]float64{1, 1}, 2, bc, cd)
		m := geom.VectorOf([]float64{1, 1}, 2, abc, bcd)
		return NewCubic(b.P0, ab, abc, m), NewCubic(m, bcd, cd, b.P1)
	}
}

// Between returns the curve that, reparameterized to [0,1], traces b
// over [t0,t1]. Requires 0 <= t0 < t1 <= 1.
func (b Bezier) Between(t0, t1 float64) Bezier {
	switch b.Kind {
	case Line:
		return NewLine(b.PointAt(t0), b.PointAt(t1))
	case Quadratic:
		p0 := b.PointAt(t0)
		p1 := b.PointAt(t1)
		tan0 := b.TangentAt(t0)
		c := p0.Add(tan0.Scale((t1 - t0) / 2))
		return NewQuadratic(p0, c, p1)
	default: // Cubic
		dt := t1 - t0
		p0 := b.PointAt(t0)
		p1 := b.PointAt(t1)
		tan0 := b.TangentAt(t0)
		tan1 := b.TangentAt(t1)
		c0 := p0.Add(tan0.Scale(dt / 3))
		c1 := p1.Sub(tan1.Scale(dt / 3))
		return NewCubic(p0, c0, c1, p1)
	}
}

// IsStraight reports whether b is within straightness s of a straight
// line from P0 to P1. For a control point c, with p = P1-P0 and
// lp2 = |p|^2, its contribution is c_s = sqrt(lp2*|c-P0|^2 -
// ((c-P0).p)^2), scaled against sc = lp2 (falling back to the
// degenerate cases below when either vector is ~zero). A quadratic is
// straight when its single c_s <= s*sc; a cubic sums its two
// contributions and compares against s*max(sc0, sc1).
func (b Bezier) IsStraight(straightness float64) bool {
	if b.Kind == Line {
		return true
	}
	p := b.P1.Sub(b.P0)
	lp2 := p.Len2()
	const eps = 1e-12

	controlStraightness := func(c geom.Point) (cs, sc float64) {
		cp := c.Sub(b.P0)
		lc2 := cp.Len2()
		switch {
		case lc2 < eps:
			return 0, lp2
		case lp2 < eps:
			return lc2, 1
		default:
			d := cp.Dot(p)
			return math.Sqrt(lp2*lc2 - d*d), lp2
		}
	}

	if b.Kind == Quadratic {
		cs, sc := controlStraightness(b.C0)
		return cs <= straightness*sc
	}
	c0s, sc0 := controlStraightness(b.C0)
	c1s, sc1 := controlStraightness(b.C1)
	return c0s+c1s <= straightness*math.Max(sc0, sc1)
}

// Scale multiplies every point by k about the origin.
func (b Bezier) Scale(k float64) Bezier {
	return Bezier{Kind: b.Kind, P0: b.P0.Scale(k), P1: b.P1.Scale(k), C0: b.C0.Scale(k), C1: b.C1.Scale(k)}
}

// ScaleXY scales X and Y independently about the origin.
func (b Bezier) ScaleXY(s geom.Point) Bezier {
	return Bezier{Kind: b.Kind, P0: b.P0.ScaleXY(s), P1: b.P1.ScaleXY(s), C0: b.C0.ScaleXY(s), C1: b.C1.ScaleXY(s)}
}

// Rotate rotates every point about the origin by angleDeg degrees.
func (b Bezier) Rotate(angleDeg float64) Bezier {
	return Bezier{
		Kind: b.Kind,
		P0:   b.P0.Rotate(angleDeg),
		P1:   b.P1.Rotate(angleDeg),
		C0:   b.C0.Rotate(angleDeg),
		C1:   b.C1.Rotate(angleDeg),
	}
}
