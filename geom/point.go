// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the value types shared across the diagram
// engine: points, ranges, margins, bounding boxes and affine
// transforms.
package geom

import "math"

// Point is a 2-D vector of reals. It is a value type: every operation
// returns a new Point rather than mutating the receiver.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Origin is the zero point.
var Origin = Point{}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Neg() Point        { return Point{-p.X, -p.Y} }
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// ScaleXY scales each axis independently.
func (p Point) ScaleXY(q Point) Point { return Point{p.X * q.X, p.Y * q.Y} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the Z component of the 3-D cross product of p and q
// treated as vectors in the XY plane.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Len2() float64 { return p.Dot(p) }
func (p Point) Len() float64  { return math.Sqrt(p.Len2()) }

// Normalize returns p scaled to unit length. The zero vector is
// returned unchanged.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Normal returns p rotated counter-clockwise by 90 degrees,
// (x,y) -> (-y,x); the result has p's length.
func (p Point) Normal() Point { return Point{-p.Y, p.X} }

// Rotate rotates p about the origin by angle degrees.
func (p Point) Rotate(angleDeg float64) Point {
	r := angleDeg * math.Pi / 180
	s, c := math.Sin(r), math.Cos(r)
	return Point{p.X*c - p.Y*s, p.X*s + p.Y*c}
}

// RotateAbout rotates p about center by angle degrees.
func (p Point) RotateAbout(center Point, angleDeg float64) Point {
	return p.Sub(center).Rotate(angleDeg).Add(center)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Len() }

// VectorOf computes a weighted combination of points scaled by 1/divisor,
// matching the Bezier "vector_of" helper used to build exact midpoints:
// sum(scale[i]*pts[i]) / divisor.
func VectorOf(scale []float64, divisor float64, pts ...Point) Point {
	var acc Point
	for i, s := range scale {
		if s == 0 {
			continue
		}
		acc = acc.Add(pts[i].Scale(s))
	}
	return acc.Scale(1 / divisor)
}
