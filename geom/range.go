// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Range is an ordered pair [Min,Max]. A Range with Min > Max is the
// empty range; None returns the canonical empty value.
type Range struct {
	Min, Max float64
}

// None is the canonical empty range.
func None() Range { return Range{Min: 0, Max: -1} }

// RangeOf builds a range from two bounds, ordering them.
func RangeOf(a, b float64) Range {
	if a <= b {
		return Range{Min: a, Max: b}
	}
	return Range{Min: b, Max: a}
}

func (r Range) IsNone() bool { return r.Min > r.Max }

func (r Range) Size() float64 {
	if r.IsNone() {
		return 0
	}
	return r.Max - r.Min
}

func (r Range) Center() float64 { return (r.Min + r.Max) / 2 }

// Include returns the smallest range containing r and x.
func (r Range) Include(x float64) Range {
	if r.IsNone() {
		return Range{Min: x, Max: x}
	}
	return Range{Min: math.Min(r.Min, x), Max: math.Max(r.Max, x)}
}

// Enlarge grows both ends outward by value (value may be negative to
// shrink, see Reduce).
func (r Range) Enlarge(value float64) Range {
	if r.IsNone() {
		return r
	}
	return Range{Min: r.Min - value, Max: r.Max + value}
}

// Reduce shrinks both ends inward by value.
func (r Range) Reduce(value float64) Range { return r.Enlarge(-value) }

// Union returns the smallest range containing both r and o. A None
// operand is absorbed.
func (r Range) Union(o Range) Range {
	if r.IsNone() {
		return o
	}
	if o.IsNone() {
		return r
	}
	return Range{Min: math.Min(r.Min, o.Min), Max: math.Max(r.Max, o.Max)}
}

// Intersect returns the overlap of r and o, or None if they do not
// overlap.
func (r Range) Intersect(o Range) Range {
	if r.IsNone() || o.IsNone() {
		return None()
	}
	result := Range{Min: math.Max(r.Min, o.Min), Max: math.Min(r.Max, o.Max)}
	if result.IsNone() {
		return None()
	}
	return result
}

// AddMargin widens the range by a Margin's low/high amounts (low
// subtracted from Min, high added to Max).
func (r Range) AddMargin(m Margin) Range {
	return Range{Min: r.Min - m.Low, Max: r.Max + m.High}
}

// SubMargin is the inverse of AddMargin: it shrinks the range.
func (r Range) SubMargin(m Margin) Range {
	return Range{Min: r.Min + m.Low, Max: r.Max - m.High}
}

// FitWithin computes the translation and resulting sub-range of r (the
// inner range) positioned within outer using anchor in [-1,1] and
// expand in [0,1], per the anchor/expand fitting rule: the anchor-
// weighted point of the inner is aligned to the anchor-weighted point
// of the outer, then the inner is expanded toward the outer edges
// proportionally to expand.
func (r Range) FitWithin(outer Range, anchor, expand float64) (translation float64, fitted Range) {
	innerCenter2 := r.Max + r.Min
	outerCenter2 := outer.Max + outer.Min
	innerSize := r.Max - r.Min
	outerSize := outer.Max - outer.Min
	translation = (outerCenter2-innerCenter2)/2 + anchor*(outerSize-innerSize)/2
	newMin := r.Min + translation + expand*(outer.Min-r.Min-translation)
	newMax := r.Max + translation + expand*(outer.Max-r.Max-translation)
	return translation, Range{Min: newMin, Max: newMax}
}
