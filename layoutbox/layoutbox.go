// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layoutbox implements the margin/border/padding/rotate/scale
// transform chain that maps a piece of content into its outer
// rectangle, and its inverse (fitting laid-out outer geometry back down
// to content coordinates).
package layoutbox

import (
	"math"

	"github.com/rcoreilly/diagram/geom"
)

// Box describes the chain around a content bbox: rotation (degrees)
// and scale are applied to content first, then padding, border and
// margin are added outward in that order.
type Box struct {
	Padding     geom.MBox
	BorderWidth float64
	Margin      geom.MBox
	RotationDeg float64
	Scale       float64
	AnchorX     float64 // [-1,1]
	AnchorY     float64
	ExpandX     float64 // [0,1]
	ExpandY     float64
}

// DefaultBox is the identity box: no padding/border/margin, no
// rotation/scale, anchored/pinned at its own center with no expansion.
var DefaultBox = Box{Scale: 1}

// contentRect rotates and scales contentBBox about refPoint, per §4.7
// step 1.
func contentRect(contentBBox geom.BBox, refPoint geom.Point, rotationDeg, scale float64) geom.BBox {
	t := geom.Transform{RotationDeg: rotationDeg, Scale: scale}
	corners := contentBBox.Corners()
	out := geom.NoneBBox()
	for _, c := range corners {
		rel := c.Sub(refPoint)
		rel = t.Apply(rel)
		p := refPoint.Add(rel)
		out.X = out.X.Include(p.X)
		out.Y = out.Y.Include(p.Y)
	}
	return out
}

// DesiredOuter computes the box's advertised desired bbox (§4.7's
// outer rectangle) given the content's own desired bbox and rotation
// reference point.
func (b Box) DesiredOuter(contentBBox geom.BBox, refPoint geom.Point) geom.BBox {
	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	content := contentRect(contentBBox, refPoint, b.RotationDeg, scale)
	padded := content.AddMargin(b.Padding)
	bordered := padded.AddMargin(geom.UniformMBox(b.BorderWidth))
	outer := bordered.AddMargin(b.Margin)
	return outer
}

// ContentToLayout computes, given a laid-out outer rectangle (assigned
// by the parent), the affine transform mapping content coordinates into
// layout coordinates. It returns only that transform.
func (b Box) ContentToLayout(laidOutOuter geom.BBox, contentBBox geom.BBox, refPoint geom.Point) geom.Transform {
	inner := laidOutOuter.SubMargin(b.Margin)
	inner = inner.SubMargin(geom.UniformMBox(b.BorderWidth))
	inner = inner.SubMargin(b.Padding)

	w, h := FitLargestRectInRotated(inner.Width(), inner.Height(), b.RotationDeg)

	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	contentW := contentBBox.Width() * scale
	contentH := contentBBox.Height() * scale
	fitScaleX := 1.0
	fitScaleY := 1.0
	if contentW > 0 {
		fitScaleX = w / contentW
	}
	if contentH > 0 {
		fitScaleY = h / contentH
	}
	fitScale := math.Min(fitScaleX, fitScaleY)
	if fitScale <= 0 || math.IsInf(fitScale, 0) || math.IsNaN(fitScale) {
		fitScale = 1
	}

	// tx/ty are the absolute position (in layout coordinates) where the
	// content's reference point should land: FitWithin centers a range
	// that is already zero-centered, so its result is an absolute
	// target, not a further offset.
	tx, _ := geom.Range{Min: -w / 2, Max: w / 2}.FitWithin(
		geom.Range{Min: inner.Center().X - inner.Width()/2, Max: inner.Center().X + inner.Width()/2},
		b.AnchorX, b.ExpandX)
	ty, _ := geom.Range{Min: -h / 2, Max: h / 2}.FitWithin(
		geom.Range{Min: inner.Center().Y - inner.Height()/2, Max: inner.Center().Y + inner.Height()/2},
		b.AnchorY, b.ExpandY)

	combinedScale := scale * fitScale
	pivot := geom.Transform{RotationDeg: b.RotationDeg, Scale: combinedScale}

	// Translation must carry refPoint (rotated/scaled about the origin,
	// since Transform has no separate pivot) to (tx,ty): content rotates
	// and scales about refPoint (DesiredOuter does the same), so the
	// fixed point of that rotation/scale has to land exactly on target.
	return geom.Transform{
		Translation: geom.Pt(tx, ty).Sub(pivot.Apply(refPoint)),
		RotationDeg: b.RotationDeg,
		Scale:       combinedScale,
	}
}
