// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcoreilly/diagram/geom"
	"github.com/rcoreilly/diagram/markup"
	"github.com/rcoreilly/diagram/render"
)

// Two 10x10 rects side by side in a single-row layout, exactly filling
// a 20x10 container: no relaxation slack, so the grid resolves to its
// minimal placement and each rect lands in its own track.
func TestResolveLayoutContainerPlacesGridChildrenSideBySide(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("layout"),
		markup.Start("rect", "id", "a", "bbox", "10 10", "grid", "0 0"),
		markup.End("rect"),
		markup.Start("rect", "id", "b", "bbox", "10 10", "grid", "1 0"),
		markup.End("rect"),
		markup.End("layout"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))
	assert.False(t, d.Errors.HasErrors())

	root := Handle(1)
	d.Resolve(root, geom.BBoxOf(0, 0, 20, 10))

	a := d.elem(Handle(2))
	b := d.elem(Handle(3))

	assert.InDelta(t, 0, a.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 0, a.Transform.Translation.Y, 1e-9)
	assert.InDelta(t, 10, b.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 0, b.Transform.Translation.Y, 1e-9)
}

// A 40-wide container over two 10-wide grid children stretches the
// tracks via spring relaxation; the children's own desired sizes do not
// grow, but the cells the layout assigns them do.
func TestResolveLayoutContainerRelaxesWiderContainer(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("layout"),
		markup.Start("rect", "id", "a", "bbox", "10 10", "grid", "0 0"),
		markup.End("rect"),
		markup.Start("rect", "id", "b", "bbox", "10 10", "grid", "1 0"),
		markup.End("rect"),
		markup.End("layout"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))

	root := Handle(1)
	d.Resolve(root, geom.BBoxOf(0, 0, 40, 10))

	a := d.elem(Handle(2))
	b := d.elem(Handle(3))
	// desired width is 20 (two 10-wide tracks); within is 40, so the
	// extra 20 splits evenly across the two adjacent-track links
	// (uniform growth 1 each): tracks land at 0, 20, 40, which already
	// fill the container, so the grid needs no further shift. Each child
	// keeps its own 10x10 aspect-preserving content size (anchor 0)
	// centered within its now-20-wide track.
	assert.InDelta(t, 5, a.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 25, b.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 20, b.Transform.Translation.X-a.Transform.Translation.X, 1e-9)
}

// Full pipeline: markup -> Diagram -> Resolve -> Drawable -> Emit ->
// DebugString, exercising every stage together.
func TestFullPipelineEmitsOrderedPrimitives(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("diagram"),
		markup.Start("rect", "id", "bg", "bbox", "10 10", "bg", "blue"),
		markup.End("rect"),
		markup.End("diagram"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))

	root := Handle(1)
	d.Resolve(root, geom.BBoxOf(0, 0, 100, 100))

	drawable := d.Drawable(root)
	prims := render.Emit(drawable)
	s := render.DebugString(prims)

	assert.Contains(t, s, "fill bg")
	assert.Contains(t, s, "group-start bg")
	assert.Contains(t, s, "group-end bg")
}

// A circle with neither bg nor borderwidth still draws its own
// outline, rather than contributing no geometry at all.
func TestCircleWithoutFillOrBorderStillDrawsOutline(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("diagram"),
		markup.Start("circle", "id", "c", "bbox", "5"),
		markup.End("circle"),
		markup.End("diagram"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))

	root := Handle(1)
	d.Resolve(root, geom.BBoxOf(0, 0, 100, 100))

	drawable := d.Drawable(root).Children[0]
	assert.False(t, drawable.HasFill)
	assert.False(t, drawable.HasBorder)
	assert.True(t, drawable.HasPath)
	assert.NotEmpty(t, drawable.Path)

	s := render.DebugString(render.Emit(d.Drawable(root)))
	assert.Contains(t, s, "path c segments=")
}
