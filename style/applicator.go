// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

// Applicator drives the bitmask-stack traversal of a RuleSet across an
// element tree. Callers walk their tree themselves and call Enter/Leave
// around each node visit, in the same order they visit the tree
// (pre-order Enter, post-order Leave, one Leave per Enter, properly
// nested).
type Applicator struct {
	rs    *RuleSet
	stack []bitmask
}

// NewApplicator builds an Applicator for rs, choosing the bitmask64 fast
// path when rs has 64 or fewer rules and the growable bitmaskWords
// representation otherwise. The traversal logic below is identical
// either way.
func (rs *RuleSet) NewApplicator() *Applicator {
	top := emptyMask(len(rs.Rules))
	for _, i := range rs.Roots {
		top.set(i)
	}
	return &Applicator{rs: rs, stack: []bitmask{top}}
}

// Enter evaluates every rule active at the current tree level against
// node, firing actions via fire for rules that match, and pushes the
// mask active for node's children. Callers must pair each Enter with a
// Leave once node's subtree has been fully visited.
func (a *Applicator) Enter(node int, fire func(ActionIndex)) {
	cur := a.stack[len(a.stack)-1]
	child := emptyMask(len(a.rs.Rules))

	// current is a working copy since MatchEndAgain/MatchPropagateAgain
	// inject children back into it for re-evaluation against this same
	// node; iterate to a fixed point rather than a single pass.
	current := cur.clone()
	again := true
	visited := emptyMask(len(a.rs.Rules)) // rules already evaluated this node, to avoid infinite loops on self-referential "again" rules
	for again {
		again = false
		var toVisit []int
		current.forEachSet(func(i int) {
			if !visited.test(i) {
				toVisit = append(toVisit, i)
			}
		})
		for _, i := range toVisit {
			visited.set(i)
			r := a.rs.Rules[i]
			matched := r.Match != nil && r.Match(node)
			d := r.disposition(matched)
			if fires(d) && r.Action != NoAction {
				fire(r.Action)
			}
			switch d {
			case MismatchEnd:
				// drop: neither current nor child gets this rule.
			case MismatchPropagate:
				child.set(i)
			case MatchEndChildren:
				for _, c := range r.Children {
					child.set(c)
				}
			case MatchPropagateChildren:
				child.set(i)
				for _, c := range r.Children {
					child.set(c)
				}
			case MatchEndAgain:
				for _, c := range r.Children {
					current.set(c)
				}
				again = true
			case MatchPropagateAgain:
				child.set(i)
				for _, c := range r.Children {
					current.set(c)
				}
				again = true
			}
		}
	}

	a.stack = append(a.stack, child)
}

// Leave pops the mask pushed by the matching Enter call.
func (a *Applicator) Leave() {
	a.stack = a.stack[:len(a.stack)-1]
}
