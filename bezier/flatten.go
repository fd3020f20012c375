// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezier

import "github.com/rcoreilly/diagram/geom"

// Segment is one flattened line segment, (pa, pb), yielded so that
// consecutive segments share pb/pa and the full sequence runs from the
// curve's P0 to its P1.
type Segment struct {
	A, B geom.Point
}

// LineIter yields the straightness-bounded flattening of a Bezier as a
// sequence of line segments, in p0-to-p1 order. It holds an explicit
// stack of not-yet-flat sub-curves rather than recursing, so the
// worst-case stack depth is bounded and the sequence can be consumed
// lazily.
type LineIter struct {
	straightness float64
	stack        []Bezier
}

// NewLineIter creates an iterator flattening b to straightness s.
func NewLineIter(b Bezier, s float64) *LineIter {
	return &LineIter{straightness: s, stack: []Bezier{b}}
}

// Next pops the next straight segment off the stack, bisecting as
// needed. It returns false once the stack is empty.
func (it *LineIter) Next() (Segment, bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if top.IsStraight(it.straightness) {
			return Segment{A: top.P0, B: top.P1}, true
		}
		b0, b1 := top.Bisect()
		// Push the second half first so the first half (b0, which
		// starts at top.P0) is popped and processed next, keeping
		// traversal depth-first from P0 to P1.
		it.stack = append(it.stack, b1, b0)
	}
	return Segment{}, false
}

// AsLines collects the full flattening of b at straightness s.
func AsLines(b Bezier, s float64) []Segment {
	it := NewLineIter(b, s)
	var out []Segment
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, seg)
	}
	return out
}

// AsPoints returns the p0 of each flattened segment followed by the
// curve's final endpoint.
func AsPoints(b Bezier, s float64) []geom.Point {
	segs := AsLines(b, s)
	pts := make([]geom.Point, 0, len(segs)+1)
	for _, seg := range segs {
		pts = append(pts, seg.A)
	}
	pts = append(pts, b.P1)
	return pts
}

// Length sums segment distances over the flattening of b at
// straightness s.
func Length(b Bezier, s float64) float64 {
	total := 0.0
	for _, seg := range AsLines(b, s) {
		total += seg.A.Distance(seg.B)
	}
	return total
}

// TOfDistance finds the parameter t at which the arc length along b
// (flattened to straightness s) from P0 reaches distance d. It returns
// (0, false) if d < 0, and (1, false) if d exceeds the curve's total
// length; otherwise (t, true). A zero-length segment encountered during
// the descent returns that segment's starting t.
func TOfDistance(b Bezier, s float64, d float64) (float64, bool) {
	if d < 0 {
		return 0, false
	}
	total := Length(b, s)
	if d > total {
		return 1, false
	}
	return tOfDistanceRec(b, s, 0, 1, d)
}

func tOfDistanceRec(b Bezier, s float64, tStart, tScale float64, remaining float64) (float64, bool) {
	if b.IsStraight(s) {
		segLen := b.P0.Distance(b.P1)
		if segLen == 0 {
			return tStart, true
		}
		frac := remaining / segLen
		if frac > 1 {
			return tStart + tScale, true
		}
		return tStart + tScale*frac, true
	}
	b0, b1 := b.Bisect()
	halfScale := tScale / 2
	len0 := Length(b0, s)
	if remaining <= len0 {
		return tOfDistanceRec(b0, s, tStart, halfScale, remaining)
	}
	return tOfDistanceRec(b1, s, tStart+halfScale, halfScale, remaining-len0)
}
