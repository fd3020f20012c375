// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the 1-D track resolver: a deterministic
// minimal-placement pass, followed by an optional spring-relaxation
// pass for fitting a grid to a larger container.
package grid

import "sort"

// CellRequest is one track-spanning request: occupy tracks
// [Start,End) with at least Size total extent.
type CellRequest struct {
	Start, End int
	Size       float64
}

type activeCell struct {
	start, end int
	size       float64 // remaining, residual size
}

// ResolveMinimal runs the deterministic minimal-placement algorithm
// over requests and returns the assigned coordinate of every track that
// is some request's Start or End (e.g. requests (0,4) and (4,6) yield
// tracks 0, 4 and 6 only).
func ResolveMinimal(requests []CellRequest) map[int]float64 {
	if len(requests) == 0 {
		return map[int]float64{}
	}

	sorted := make([]CellRequest, len(requests))
	copy(sorted, requests)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	positions := map[int]float64{}
	active := make([]activeCell, 0, len(sorted))
	col := sorted[0].Start
	pos := 0.0
	positions[col] = pos

	next := 0 // index into sorted of the next not-yet-activated request
	activate := func(upTo int) {
		for next < len(sorted) && sorted[next].Start <= upTo {
			active = append(active, activeCell{start: sorted[next].Start, end: sorted[next].End, size: sorted[next].Size})
			next++
		}
	}
	activate(col)

	for {
		// drop exhausted/irrelevant cells ending at or before col
		live := active[:0]
		for _, c := range active {
			if c.end > col {
				live = append(live, c)
			}
		}
		active = live
		activate(col)
		live = active[:0]
		for _, c := range active {
			if c.end > col {
				live = append(live, c)
			}
		}
		active = live

		if len(active) == 0 && next >= len(sorted) {
			break
		}

		nextCol := -1
		minSize := 0.0
		haveCandidate := false
		for _, c := range active {
			if c.start > col {
				// uncommitted span ahead; shrinks the horizon to its
				// start with zero required size there.
				if !haveCandidate || c.start < nextCol {
					nextCol = c.start
					minSize = 0
					haveCandidate = true
				}
				continue
			}
			// c.start <= col < c.end: spans past col.
			if !haveCandidate || c.end < nextCol {
				nextCol = c.end
				minSize = c.size
				haveCandidate = true
			} else if c.end == nextCol {
				if c.size > minSize {
					minSize = c.size
				}
			}
		}
		// also consider not-yet-activated requests starting before our
		// current guess, which would shrink the horizon further.
		for i := next; i < len(sorted); i++ {
			if sorted[i].Start <= col {
				continue
			}
			if !haveCandidate || sorted[i].Start < nextCol {
				nextCol = sorted[i].Start
				minSize = 0
				haveCandidate = true
			}
		}
		if !haveCandidate {
			break
		}

		for i := range active {
			if active[i].start <= col && active[i].end >= nextCol {
				active[i].size -= minSize
				if active[i].size < 0 {
					active[i].size = 0
				}
			}
		}

		col = nextCol
		pos += minSize
		positions[col] = pos
		activate(col)
	}

	return positions
}
