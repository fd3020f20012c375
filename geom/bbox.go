// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// BBox is a pair of Ranges, one per axis.
type BBox struct {
	X, Y Range
}

// NoneBBox is the canonical empty bbox.
func NoneBBox() BBox { return BBox{X: None(), Y: None()} }

// BBoxOf builds a bbox from the two axis bounds, each ordered.
func BBoxOf(x0, y0, x1, y1 float64) BBox {
	return BBox{X: RangeOf(x0, x1), Y: RangeOf(y0, y1)}
}

// BBoxCentered builds a bbox of the given width/height centered at c.
func BBoxCentered(c Point, w, h float64) BBox {
	return BBox{
		X: Range{Min: c.X - w/2, Max: c.X + w/2},
		Y: Range{Min: c.Y - h/2, Max: c.Y + h/2},
	}
}

func (b BBox) IsNone() bool { return b.X.IsNone() || b.Y.IsNone() }

func (b BBox) Width() float64  { return b.X.Size() }
func (b BBox) Height() float64 { return b.Y.Size() }

func (b BBox) Center() Point { return Point{X: b.X.Center(), Y: b.Y.Center()} }

func (b BBox) Union(o BBox) BBox {
	return BBox{X: b.X.Union(o.X), Y: b.Y.Union(o.Y)}
}

func (b BBox) Intersect(o BBox) BBox {
	return BBox{X: b.X.Intersect(o.X), Y: b.Y.Intersect(o.Y)}
}

func (b BBox) Enlarge(v float64) BBox {
	return BBox{X: b.X.Enlarge(v), Y: b.Y.Enlarge(v)}
}

func (b BBox) Reduce(v float64) BBox { return b.Enlarge(-v) }

func (b BBox) AddMargin(m MBox) BBox {
	return BBox{X: b.X.AddMargin(m.X), Y: b.Y.AddMargin(m.Y)}
}

func (b BBox) SubMargin(m MBox) BBox {
	return BBox{X: b.X.SubMargin(m.X), Y: b.Y.SubMargin(m.Y)}
}

// Corners returns the four corners of the bbox in order
// (min,min),(max,min),(max,max),(min,max).
func (b BBox) Corners() [4]Point {
	return [4]Point{
		{b.X.Min, b.Y.Min},
		{b.X.Max, b.Y.Min},
		{b.X.Max, b.Y.Max},
		{b.X.Min, b.Y.Max},
	}
}

// Transformed returns the axis-aligned bounding box of the transformed
// corners of b.
func (b BBox) Transformed(t Transform) BBox {
	if b.IsNone() {
		return b
	}
	corners := b.Corners()
	out := NoneBBox()
	for _, c := range corners {
		tc := t.Apply(c)
		out.X = out.X.Include(tc.X)
		out.Y = out.Y.Include(tc.Y)
	}
	return out
}
