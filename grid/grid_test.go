// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMinimalScenario(t *testing.T) {
	got := ResolveMinimal([]CellRequest{
		{Start: 0, End: 4, Size: 4},
		{Start: 4, End: 6, Size: 2},
	})
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 4, got[4], 1e-9)
	assert.InDelta(t, 6, got[6], 1e-9)
}

func TestResolveMinimalSatisfiesEverySpan(t *testing.T) {
	reqs := []CellRequest{
		{Start: 0, End: 2, Size: 5},
		{Start: 1, End: 3, Size: 3},
		{Start: 2, End: 5, Size: 8},
	}
	got := ResolveMinimal(reqs)
	for _, r := range reqs {
		assert.GreaterOrEqual(t, got[r.End]-got[r.Start]+1e-9, r.Size)
	}
}

func TestResolveMinimalSingleRequest(t *testing.T) {
	got := ResolveMinimal([]CellRequest{{Start: 0, End: 1, Size: 10}})
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 10, got[1], 1e-9)
}

func TestRelaxScenario(t *testing.T) {
	links := []Link{
		{From: 0, To: 1, MinSize: 10, Growth: 1},
		{From: 1, To: 2, MinSize: 10, Growth: 1},
		{From: 2, To: 3, MinSize: 10, Growth: 1},
	}
	r := NewResolver(links)
	pins := map[int]float64{0: 0, 3: 40}
	minimal := map[int]float64{0: 0, 1: 10, 2: 20, 3: 30}
	got := r.Relax(pins, minimal)
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, 40.0/3, got[1], 1e-6)
	assert.InDelta(t, 80.0/3, got[2], 1e-6)
	assert.InDelta(t, 40, got[3], 1e-6)
}

func TestRelaxRigidSegmentDoesNotStretch(t *testing.T) {
	links := []Link{
		{From: 0, To: 1, MinSize: 10, Growth: 0}, // rigid
		{From: 1, To: 2, MinSize: 10, Growth: 1},
	}
	r := NewResolver(links)
	pins := map[int]float64{0: 0, 2: 40}
	minimal := map[int]float64{0: 0, 1: 10, 2: 20}
	got := r.Relax(pins, minimal)
	assert.InDelta(t, 10, got[1], 1e-3)
}

func TestReachable(t *testing.T) {
	links := []Link{{From: 0, To: 1, MinSize: 1}, {From: 1, To: 2, MinSize: 1}}
	r := NewResolver(links)
	reach := r.Reachable(0)
	assert.True(t, reach[0])
	assert.True(t, reach[1])
	assert.True(t, reach[2])
}

func TestEdgeNodes(t *testing.T) {
	links := []Link{{From: 0, To: 1, MinSize: 1}, {From: 1, To: 2, MinSize: 1}}
	r := NewResolver(links)
	sources, sinks := r.EdgeNodes(0)
	assert.Equal(t, []int{0}, sources)
	assert.Equal(t, []int{2}, sinks)
}
