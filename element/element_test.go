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
	"github.com/rcoreilly/diagram/style"
)

func TestBuildSimpleRectResolvesBBox(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("diagram"),
		markup.Start("rect", "bbox", "10 10"),
		markup.End("rect"),
		markup.End("diagram"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))
	assert.False(t, d.Errors.HasErrors())

	root := Handle(1)
	d.Resolve(root, geom.BBoxOf(0, 0, 100, 100))

	rect := d.elem(Handle(2))
	assert.InDelta(t, 0, rect.OuterBBox.X.Min, 1e-9)
	assert.InDelta(t, 10, rect.OuterBBox.X.Max, 1e-9)
	assert.InDelta(t, 0, rect.OuterBBox.Y.Min, 1e-9)
	assert.InDelta(t, 10, rect.OuterBBox.Y.Max, 1e-9)
}

func TestRuleWithInlineActionResolvesNamedColor(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("diagram"),
		markup.Start("rect", "bbox", "10 10"),
		markup.End("rect"),
		markup.End("diagram"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))

	rs := style.NewRuleSet()
	rs.AddRoot(style.Rule{
		Match:     d.MatchByTag(TagRect),
		OnMatch:   style.MatchEndChildren,
		OnNoMatch: style.MismatchPropagate,
		Action:    0,
	})
	d.Rules = rs

	d.ApplyRules(Handle(1), func(h Handle, action style.ActionIndex) {
		if action == 0 {
			d.SetStyle(h, "bg", "red")
		}
	})

	rect := d.elem(Handle(2))
	bg, ok := rect.Style.Get("bg")
	assert.True(t, ok)
	c, ok := bg.RGB()
	assert.True(t, ok)
	assert.InDelta(t, 1, c.R, 1e-9)
	assert.InDelta(t, 0, c.G, 1e-9)
}

func TestGridxGridyPlaceIndependentlyOfGrid(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("layout"),
		markup.Start("rect", "id", "a", "bbox", "10 10", "gridx", "0 1", "gridy", "0 1"),
		markup.End("rect"),
		markup.End("layout"),
	})
	d := New()
	assert.NoError(t, d.Build(context.Background(), r))
	assert.False(t, d.Errors.HasErrors())

	a := d.elem(Handle(2))
	assert.True(t, a.hasGrid)
	assert.Equal(t, 0, a.gridSx)
	assert.Equal(t, 1, a.gridEx)
	assert.Equal(t, 0, a.gridSy)
	assert.Equal(t, 1, a.gridEy)
}

func TestUnknownTagIsNonFatal(t *testing.T) {
	r := markup.NewSliceReader([]markup.Event{
		markup.Start("diagram"),
		markup.Start("bogus"),
		markup.End("bogus"),
		markup.End("diagram"),
	})
	d := New()
	err := d.Build(context.Background(), r)
	assert.NoError(t, err)
	assert.True(t, d.Errors.HasErrors())
	assert.Len(t, d.Errors.Errors, 1)

	root := d.elem(Handle(1))
	assert.Empty(t, root.Children)
}
