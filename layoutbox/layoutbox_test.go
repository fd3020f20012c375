// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layoutbox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcoreilly/diagram/geom"
)

func TestFitLargestRectZeroRotation(t *testing.T) {
	w, h := FitLargestRectInRotated(10, 4, 0)
	assert.InDelta(t, 10, w, 1e-9)
	assert.InDelta(t, 4, h, 1e-9)
}

func TestFitLargestRectSquare45(t *testing.T) {
	w, h := FitLargestRectInRotated(10, 10, 45)
	want := 10 / math.Sqrt2
	assert.InDelta(t, want, w, 1e-6)
	assert.InDelta(t, want, h, 1e-6)
}

func TestFitLargestRectFitsInside(t *testing.T) {
	// the returned (w,h), rotated by the same angle, must not exceed
	// the original bounding box in either axis.
	for _, angle := range []float64{10, 30, 60, 80} {
		w, h := FitLargestRectInRotated(12, 7, angle)
		a := angle * math.Pi / 180
		bx := w*math.Cos(a) + h*math.Sin(a)
		by := w*math.Sin(a) + h*math.Cos(a)
		assert.LessOrEqual(t, bx, 12+1e-6)
		assert.LessOrEqual(t, by, 7+1e-6)
	}
}

func TestDesiredOuterAddsChain(t *testing.T) {
	b := Box{
		Padding:     geom.UniformMBox(1),
		BorderWidth: 2,
		Margin:      geom.UniformMBox(3),
		Scale:       1,
	}
	content := geom.BBoxOf(0, 0, 10, 4)
	outer := b.DesiredOuter(content, geom.Origin)
	// total expansion per side: padding(1)+border(2)+margin(3) = 6
	assert.InDelta(t, -6, outer.X.Min, 1e-9)
	assert.InDelta(t, 16, outer.X.Max, 1e-9)
}

func TestContentToLayoutPlacesRefPointAtContainerCenter(t *testing.T) {
	b := DefaultBox
	content := geom.BBoxOf(0, 0, 10, 10)
	ref := content.Center()
	laidOut := geom.BBoxOf(0, 0, 20, 10)

	tr := b.ContentToLayout(laidOut, content, ref)
	got := tr.Apply(ref)
	assert.InDelta(t, laidOut.Center().X, got.X, 1e-9)
	assert.InDelta(t, laidOut.Center().Y, got.Y, 1e-9)
}

func TestContentToLayoutHoldsUnderRotation(t *testing.T) {
	b := DefaultBox
	b.RotationDeg = 90
	content := geom.BBoxOf(0, 0, 10, 10)
	ref := content.Center()
	laidOut := geom.BBoxOf(0, 0, 20, 20)

	tr := b.ContentToLayout(laidOut, content, ref)
	got := tr.Apply(ref)
	// regardless of rotation, the content's own reference point must
	// still land on the container's center.
	assert.InDelta(t, laidOut.Center().X, got.X, 1e-6)
	assert.InDelta(t, laidOut.Center().Y, got.Y, 1e-6)
}
