// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

// MatchFunc decides whether a rule applies to a node, given an opaque
// node handle (an element-tree index, supplied by the caller of
// Applicator.Enter). Implementations live in the element package.
type MatchFunc func(node int) bool

// ActionIndex identifies the action a rule fires on a match; action index
// resolution (index -> actual style mutation) is left to the caller.
type ActionIndex int

// NoAction marks a rule with no action (pure structural gate).
const NoAction ActionIndex = -1

// Disposition is the match/mismatch × end/propagate × children-handling
// cross product from §4.4's six-way dispatch.
type Disposition int

const (
	MismatchEnd Disposition = iota
	MismatchPropagate
	MatchEndChildren
	MatchPropagateChildren
	MatchEndAgain
	MatchPropagateAgain
)

// Rule is one node of the rule forest. Children is a list of rule
// indices into the owning RuleSet. A child index may be lower or higher
// than its parent's: Applicator.Enter re-scans its working mask until no
// new rule is added, so evaluation does not depend on index order.
type Rule struct {
	Match    MatchFunc
	OnMatch  Disposition
	OnNoMatch Disposition
	Action   ActionIndex
	Children []int
}

// RuleSet is a dense-indexed forest of Rules. Roots lists the indices
// of the top-level rules (the initial top-of-stack mask).
type RuleSet struct {
	Rules []Rule
	Roots []int
}

// NewRuleSet builds an empty RuleSet ready for AddRule calls.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// AddRule appends r and returns its index. Callers build the forest
// bottom-up (children first) so Children can reference already-assigned
// indices, or top-down by first reserving a rule with AddRule and
// patching its Children slice afterward. Indices are assigned in call
// order, so building bottom-up gives children lower indices than their
// parents; nothing checks the order.
func (rs *RuleSet) AddRule(r Rule) int {
	rs.Rules = append(rs.Rules, r)
	return len(rs.Rules) - 1
}

// AddRoot appends r as a rule and records it as a top-level root.
func (rs *RuleSet) AddRoot(r Rule) int {
	i := rs.AddRule(r)
	rs.Roots = append(rs.Roots, i)
	return i
}

// disposition resolves a rule's outcome given whether it matched.
func (r Rule) disposition(matched bool) Disposition {
	if matched {
		return r.OnMatch
	}
	return r.OnNoMatch
}

func fires(d Disposition) bool {
	switch d {
	case MatchEndChildren, MatchPropagateChildren, MatchEndAgain, MatchPropagateAgain:
		return true
	}
	return false
}
