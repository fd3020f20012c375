// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezier

import (
	"math"

	"github.com/rcoreilly/diagram/geom"
)

// Arc builds a cubic approximation to a circular arc of the given
// angle (degrees) and radius, centered at center, in the plane spanned
// by the unit vectors u and n, starting rotateDeg degrees (measured in
// the u/n frame) from u. The control-point offset is
// lambda = 4*radius/3 * (1/sin(angle/2) - 1).
func Arc(angleDeg, radius float64, center, u, n geom.Point, rotateDeg float64) Bezier {
	angle := angleDeg * math.Pi / 180
	rotate := rotateDeg * math.Pi / 180
	halfAngle := angle / 2
	lambda := radius * 4 / 3 * (1/math.Sin(halfAngle) - 1)

	d0a := rotate
	d1a := rotate + angle

	pointAt := func(theta float64) geom.Point {
		return center.Add(u.Scale(math.Cos(theta) * radius)).Add(n.Scale(math.Sin(theta) * radius))
	}
	tangentAt := func(theta float64) geom.Point {
		return u.Scale(-math.Sin(theta)).Add(n.Scale(math.Cos(theta)))
	}

	p0 := pointAt(d0a)
	p1 := pointAt(d1a)
	c0 := p0.Add(tangentAt(d0a).Scale(lambda))
	c1 := p1.Sub(tangentAt(d1a).Scale(lambda))
	return NewCubic(p0, c0, c1, p1)
}

// ArcXY is Arc in the standard XY plane (u=(1,0), n=(0,1)), the common
// case used by Polygon's corner rounding.
func ArcXY(angleDeg, radius float64, center geom.Point, rotateDeg float64) Bezier {
	return Arc(angleDeg, radius, center, geom.Pt(1, 0), geom.Pt(0, 1), rotateDeg)
}

// degenerate bounds beyond which two incoming direction vectors are
// treated as parallel (same or opposite direction) for round-corner
// purposes, matching the source's "~1"/"~-1" thresholds.
const roundCornerParallelTol = 1e-6

// OfRoundCorner builds a curve tangent to the two incoming direction
// vectors v0, v1 at corner, with the given radius. v0 and v1 need not
// be normalized or the same length. Nearly-parallel incoming vectors
// (dot of their unit forms within roundCornerParallelTol of +/-1)
// collapse to a quadratic using corner as the control point, since the
// full cubic construction is singular there.
func OfRoundCorner(corner, v0, v1 geom.Point, radius float64) Bezier {
	v0u := v0.Normalize()
	v1u := v1.Normalize()
	dot := v0u.Dot(v1u)
	if dot >= 1-roundCornerParallelTol || dot <= -1+roundCornerParallelTol {
		p0 := corner.Sub(v0u.Scale(radius))
		p1 := corner.Sub(v1u.Scale(radius))
		return NewQuadratic(p0, corner, p1)
	}

	reverse := v0.Cross(v1) > 0
	if reverse {
		v0u, v1u = v1u, v0u
	}

	n0u := v0u.Normal()
	n1u := v1u.Normal()
	k := radius / n1u.Dot(v0u)
	vectorSum := v0u.Add(v1u)
	center := corner.Sub(vectorSum.Scale(k))

	l2 := vectorSum.Len2()
	l := math.Sqrt(l2)
	normalDiff := n1u.Sub(n0u)
	lambda := (4 * radius / (3 * l2)) * (2*l + normalDiff.Dot(vectorSum))

	p0 := center.Sub(n0u.Scale(radius))
	p1 := center.Add(n1u.Scale(radius))
	c0 := p0.Add(v0u.Scale(lambda))
	c1 := p1.Add(v1u.Scale(lambda))

	if reverse {
		return NewCubic(p1, c1, c0, p0)
	}
	return NewCubic(p0, c0, c1, p1)
}
