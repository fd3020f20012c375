// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcoreilly/diagram/bezier"
	"github.com/rcoreilly/diagram/colorname"
	"github.com/rcoreilly/diagram/geom"
)

func TestEmitOrderFillGroupBorder(t *testing.T) {
	red, _ := colorname.Lookup("red")
	d := Drawable{
		ID:          "r1",
		HasFill:     true,
		Fill:        Polygon{Paths: []bezier.Bezier{bezier.NewLine(geom.Origin, geom.Pt(1, 0))}, Color: red},
		HasBorder:   true,
		Border:      Polygon{Paths: []bezier.Bezier{bezier.NewLine(geom.Origin, geom.Pt(1, 0))}, Color: red},
		BorderWidth: 2,
		Transform:   geom.Identity,
	}
	prims := Emit(d)
	assert.Equal(t, FillPolygon, prims[0].Kind)
	assert.Equal(t, TransformGroupStart, prims[1].Kind)
	assert.Equal(t, TransformGroupEnd, prims[2].Kind)
	assert.Equal(t, StrokePolygon, prims[3].Kind)
}

func TestEmitOrderFillPathGroup(t *testing.T) {
	red, _ := colorname.Lookup("red")
	d := Drawable{
		ID:        "c1",
		HasFill:   true,
		Fill:      Polygon{Paths: []bezier.Bezier{bezier.NewLine(geom.Origin, geom.Pt(1, 0))}, Color: red},
		HasPath:   true,
		Path:      []bezier.Bezier{bezier.NewLine(geom.Origin, geom.Pt(1, 1))},
		Transform: geom.Identity,
	}
	prims := Emit(d)
	assert.Equal(t, FillPolygon, prims[0].Kind)
	assert.Equal(t, DrawPath, prims[1].Kind)
	assert.Equal(t, TransformGroupStart, prims[2].Kind)
	assert.Len(t, prims[1].Path, 1)
}

func TestEmitRecursesIntoChildren(t *testing.T) {
	child := Drawable{ID: "c1", Transform: geom.Identity}
	parent := Drawable{ID: "p1", Transform: geom.Identity, Children: []Drawable{child}}
	prims := Emit(parent)
	var ids []string
	for _, p := range prims {
		ids = append(ids, p.ElementID)
	}
	assert.Equal(t, []string{"p1", "c1", "c1", "p1"}, ids)
}

func TestDebugStringDeterministic(t *testing.T) {
	d := Drawable{ID: "x", Transform: geom.Identity}
	s1 := DebugString(Emit(d))
	s2 := DebugString(Emit(d))
	assert.Equal(t, s1, s2)
	assert.Contains(t, s1, "group-start x")
}
