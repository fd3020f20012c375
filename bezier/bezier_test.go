// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcoreilly/diagram/geom"
)

func TestArcScenario(t *testing.T) {
	arc := ArcXY(90, 1, geom.Origin, 0)
	assert.InDelta(t, 1, arc.P0.X, 1e-7)
	assert.InDelta(t, 0, arc.P0.Y, 1e-7)
	assert.InDelta(t, 0, arc.P1.X, 1e-7)
	assert.InDelta(t, 1, arc.P1.Y, 1e-7)
	assert.InDelta(t, 1, arc.C0.X, 1e-7)
	assert.InDelta(t, 0.5522847498307935, arc.C0.Y, 1e-7)
	assert.InDelta(t, 0.5522847498307935, arc.C1.X, 1e-7)
	assert.InDelta(t, 1, arc.C1.Y, 1e-7)
}

func TestArcLength(t *testing.T) {
	arc := ArcXY(90, 1, geom.Origin, 0)
	l := Length(arc, 0.001)
	assert.InDelta(t, math.Pi/2, l, math.Pi/2*0.001)
}

func TestQuadraticFlattenScenario(t *testing.T) {
	b := NewQuadratic(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 1))
	assert.Len(t, AsLines(b, 0.1), 1)
	assert.Len(t, AsLines(b, 0.01), 52)
}

func TestCubicFlattenScenario(t *testing.T) {
	b := NewCubic(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(6, 1), geom.Pt(20, 5))
	assert.Len(t, AsLines(b, 0.1), 3)
	assert.Len(t, AsLines(b, 0.01), 24)
}

func TestBisectProperty(t *testing.T) {
	curves := []Bezier{
		NewLine(geom.Pt(0, 0), geom.Pt(4, 6)),
		NewQuadratic(geom.Pt(0, 0), geom.Pt(3, 8), geom.Pt(10, 2)),
		NewCubic(geom.Pt(0, 0), geom.Pt(2, 9), geom.Pt(7, -3), geom.Pt(12, 4)),
	}
	for _, b := range curves {
		b0, b1 := b.Bisect()
		for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p0 := b0.PointAt(tt)
			want0 := b.PointAt(tt / 2)
			assert.InDelta(t, want0.X, p0.X, 1e-8)
			assert.InDelta(t, want0.Y, p0.Y, 1e-8)

			p1 := b1.PointAt(tt)
			want1 := b.PointAt(0.5 + tt/2)
			assert.InDelta(t, want1.X, p1.X, 1e-8)
			assert.InDelta(t, want1.Y, p1.Y, 1e-8)
		}
	}
}

func TestBetweenProperty(t *testing.T) {
	curves := []Bezier{
		NewLine(geom.Pt(0, 0), geom.Pt(4, 6)),
		NewQuadratic(geom.Pt(0, 0), geom.Pt(3, 8), geom.Pt(10, 2)),
		NewCubic(geom.Pt(0, 0), geom.Pt(2, 9), geom.Pt(7, -3), geom.Pt(12, 4)),
	}
	cases := []struct{ t0, t1 float64 }{
		{0, 1}, {0.1, 0.9}, {0.2, 0.4}, {0, 0.3},
	}
	for _, b := range curves {
		for _, c := range cases {
			sub := b.Between(c.t0, c.t1)
			for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
				got := sub.PointAt(u)
				want := b.PointAt(c.t0 + u*(c.t1-c.t0))
				assert.InDelta(t, want.X, got.X, 1e-6)
				assert.InDelta(t, want.Y, got.Y, 1e-6)
			}
		}
	}
}

func TestStraightnessMonotone(t *testing.T) {
	b := NewCubic(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(6, 1), geom.Pt(20, 5))
	s1, s2 := 0.2, 0.01
	assert.GreaterOrEqual(t, len(AsLines(b, s2)), len(AsLines(b, s1)))
}

func TestAsLinesOrder(t *testing.T) {
	b := NewCubic(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(6, 1), geom.Pt(20, 5))
	segs := AsLines(b, 0.05)
	assert.Equal(t, b.P0, segs[0].A)
	assert.Equal(t, b.P1, segs[len(segs)-1].B)
	for i := 0; i+1 < len(segs); i++ {
		assert.Equal(t, segs[i].B, segs[i+1].A)
	}
}

func TestTOfDistance(t *testing.T) {
	b := NewLine(geom.Pt(0, 0), geom.Pt(10, 0))
	tAt, ok := TOfDistance(b, 0.01, 5)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, tAt, 1e-6)

	_, ok = TOfDistance(b, 0.01, -1)
	assert.False(t, ok)

	tAt, ok = TOfDistance(b, 0.01, 100)
	assert.False(t, ok)
	assert.Equal(t, 1.0, tAt)
}

func TestOfRoundCornerTangent(t *testing.T) {
	corner := geom.Pt(0, 0)
	v0 := geom.Pt(-1, 0)
	v1 := geom.Pt(0, 1)
	c := OfRoundCorner(corner, v0, v1, 1)
	assert.Equal(t, Cubic, c.Kind)
	// the curve's tangent at each endpoint is parallel to the
	// corresponding incoming direction vector (cross product ~ 0).
	tan0 := c.TangentAt(0)
	tan1 := c.TangentAt(1)
	assert.InDelta(t, 0, tan0.Cross(v0), 1e-6)
	assert.InDelta(t, 0, tan1.Cross(v1), 1e-6)
}

func TestOfRoundCornerDegenerate(t *testing.T) {
	corner := geom.Pt(0, 0)
	v0 := geom.Pt(1, 0)
	v1 := geom.Pt(1, 0)
	c := OfRoundCorner(corner, v0, v1, 1)
	assert.Equal(t, Quadratic, c.Kind)
	assert.Equal(t, corner, c.C0)
}
