// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcoreilly/diagram/geom"
)

func TestRectangleSharpBBox(t *testing.T) {
	r := Rectangle(geom.Pt(1, 1), 10, 4, 0)
	b := r.BBox()
	assert.InDelta(t, -4, b.X.Min, 1e-9)
	assert.InDelta(t, 6, b.X.Max, 1e-9)
	assert.InDelta(t, -1, b.Y.Min, 1e-9)
	assert.InDelta(t, 3, b.Y.Max, 1e-9)
}

func TestRectangleSharpPathsCount(t *testing.T) {
	r := Rectangle(geom.Origin, 10, 4, 0)
	paths := r.AsPaths()
	assert.Len(t, paths, 4)
	for _, b := range paths {
		assert.Equal(t, 0, int(b.Kind))
	}
}

func TestRectangleRoundedPathsCount(t *testing.T) {
	r := Rectangle(geom.Origin, 10, 4, 0.5)
	paths := r.AsPaths()
	assert.Len(t, paths, 8)
}

func TestRoundRadiusClampedToHalfEdge(t *testing.T) {
	r := Rectangle(geom.Origin, 10, 1, 100)
	got := r.roundRadiusFor(0)
	assert.LessOrEqual(t, got, 0.5+1e-9)
}

func TestRegularPolygonVertexCount(t *testing.T) {
	p := Regular(geom.Origin, 6, 5, 0)
	assert.Len(t, p.VertexRadius, 6)
	assert.Len(t, p.AsPaths(), 6)
}
