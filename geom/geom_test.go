// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitWithinDimensionScenario(t *testing.T) {
	inner := Range{Min: -4, Max: 4}
	outer := Range{Min: 4, Max: 25}

	translation, fitted := inner.FitWithin(outer, 0, 0)
	assert.InDelta(t, 14.5, translation, 1e-9)
	assert.InDelta(t, 10.5, fitted.Min, 1e-9)
	assert.InDelta(t, 18.5, fitted.Max, 1e-9)

	_, fittedExpand := inner.FitWithin(outer, 0, 1)
	assert.InDelta(t, outer.Min, fittedExpand.Min, 1e-9)
	assert.InDelta(t, outer.Max, fittedExpand.Max, 1e-9)

	_, fittedExpandAnchored := inner.FitWithin(outer, 1, 1)
	assert.InDelta(t, outer.Min, fittedExpandAnchored.Min, 1e-9)
	assert.InDelta(t, outer.Max, fittedExpandAnchored.Max, 1e-9)
}

func TestFitWithinContainment(t *testing.T) {
	outer := Range{Min: -10, Max: 30}
	inner := Range{Min: 0, Max: 5}
	for _, anchor := range []float64{-1, -0.5, 0, 0.5, 1} {
		for _, expand := range []float64{0, 0.25, 0.5, 0.75, 1} {
			_, fitted := inner.FitWithin(outer, anchor, expand)
			assert.GreaterOrEqual(t, fitted.Min, outer.Min-1e-9)
			assert.LessOrEqual(t, fitted.Max, outer.Max+1e-9)
		}
	}
}

func TestRangeUnionIntersect(t *testing.T) {
	a := Range{Min: 0, Max: 10}
	b := Range{Min: 5, Max: 15}
	assert.Equal(t, Range{Min: 0, Max: 15}, a.Union(b))
	assert.Equal(t, Range{Min: 5, Max: 10}, a.Intersect(b))
	assert.True(t, a.Intersect(Range{Min: 20, Max: 30}).IsNone())
}

func TestBBoxTransformed(t *testing.T) {
	b := BBoxOf(-1, -1, 1, 1)
	tr := Transform{RotationDeg: 90, Scale: 1}
	out := b.Transformed(tr)
	assert.InDelta(t, -1, out.X.Min, 1e-9)
	assert.InDelta(t, 1, out.X.Max, 1e-9)
	assert.InDelta(t, -1, out.Y.Min, 1e-9)
	assert.InDelta(t, 1, out.Y.Max, 1e-9)
}

func TestTransformApply(t *testing.T) {
	tr := Transform{Translation: Pt(1, 2), RotationDeg: 90, Scale: 2}
	p := tr.Apply(Pt(1, 0))
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 4, p.Y, 1e-9)
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "", Identity.String())
	tr := Transform{Translation: Pt(1, 2), Scale: 1}
	assert.Equal(t, "translate(1 2)", tr.String())
}

func TestPointRotate(t *testing.T) {
	p := Pt(1, 0).Rotate(90)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
	assert.InDelta(t, math.Sqrt2, Pt(1, 1).Len(), 1e-9)
}
