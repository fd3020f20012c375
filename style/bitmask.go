// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

// bitmask is the minimal operation set the rule-tree traversal (§4.4)
// needs from its active-rule-set representation. Two implementations
// satisfy it: bitmask64 (a single uint64, for rule sets of 64 or fewer
// rules) and bitmaskWords (a growable []uint64), selected automatically
// by RuleSet.NewApplicator so the traversal algorithm itself never
// knows which one it is holding.
type bitmask interface {
	clone() bitmask
	test(i int) bool
	set(i int)
	clear(i int)
	isZero() bool
	forEachSet(f func(i int))
}

type bitmask64 uint64

func (b bitmask64) clone() bitmask   { return &b }
func (b bitmask64) test(i int) bool  { return b&(1<<uint(i)) != 0 }
func (b *bitmask64) set(i int)       { *b |= 1 << uint(i) }
func (b *bitmask64) clear(i int)     { *b &^= 1 << uint(i) }
func (b bitmask64) isZero() bool     { return b == 0 }

func (b bitmask64) forEachSet(f func(i int)) {
	for i := 0; i < 64; i++ {
		if b.test(i) {
			f(i)
		}
	}
}

type bitmaskWords []uint64

func newBitmaskWords(n int) bitmaskWords {
	return make(bitmaskWords, (n+63)/64)
}

func (b bitmaskWords) clone() bitmask {
	out := make(bitmaskWords, len(b))
	copy(out, b)
	return out
}

func (b bitmaskWords) test(i int) bool {
	w, bit := i/64, uint(i%64)
	if w >= len(b) {
		return false
	}
	return b[w]&(1<<bit) != 0
}

func (b bitmaskWords) set(i int) {
	w, bit := i/64, uint(i%64)
	b[w] |= 1 << bit
}

func (b bitmaskWords) clear(i int) {
	w, bit := i/64, uint(i%64)
	b[w] &^= 1 << bit
}

func (b bitmaskWords) isZero() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

func (b bitmaskWords) forEachSet(f func(i int)) {
	for w, word := range b {
		if word == 0 {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			if word&(1<<uint(bit)) != 0 {
				f(w*64 + bit)
			}
		}
	}
}

// note: set/clear on bitmask64 take a pointer receiver, so only a
// *bitmask64 satisfies the bitmask interface; allOnes, emptyMask and
// clone always return a pointer. allOnes returns a mask with the first
// n rules set (NewApplicator builds its top-level mask from emptyMask
// plus the RuleSet's Roots instead).
func allOnes(n int) bitmask {
	if n <= 64 {
		var b bitmask64
		for i := 0; i < n; i++ {
			b.set(i)
		}
		return &b
	}
	b := newBitmaskWords(n)
	for i := 0; i < n; i++ {
		b.set(i)
	}
	return b
}

func emptyMask(n int) bitmask {
	if n <= 64 {
		var b bitmask64
		return &b
	}
	return newBitmaskWords(n)
}
