// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style implements the type-erased StyleTypeValue system
// (§4.3) and the bitmask-driven rule engine (§4.4) that drives the
// element cascade.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcoreilly/diagram/colorname"
)

// Kind is the closed set of underlying representations a StyleTypeValue
// can hold. Two values only compare equal/ordered when their Kind
// matches.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindIntArray    // fixed-length int slice
	KindFloatArray  // fixed-length float64 slice
	KindIntVector   // variable-length int slice
	KindFloatVector // variable-length float64 slice
	KindString
	KindStringVector
	KindRGB
)

// Value is a type-erased style value. The "is-none" state (used to
// implement spec's Optional<T> wrapper) is a flag orthogonal to Kind,
// rather than a separate representation, since every representation
// defines is-none per §3.
type Value struct {
	kind   Kind
	none   bool
	arrLen int // fixed length for KindIntArray/KindFloatArray; 0 for others

	i   int
	f   float64
	ia  []int
	fa  []float64
	s   string
	sv  []string
	rgb colorname.RGB
}

func NewInt(def int) Value     { return Value{kind: KindInt, i: def} }
func NewFloat(def float64) Value { return Value{kind: KindFloat, f: def} }
func NewString(def string) Value { return Value{kind: KindString, s: def} }
func NewStringVector() Value   { return Value{kind: KindStringVector, none: true} }
func NewIntVector() Value      { return Value{kind: KindIntVector, none: true} }
func NewFloatVector() Value    { return Value{kind: KindFloatVector, none: true} }
func NewRGB() Value            { return Value{kind: KindRGB, none: true} }

// NewIntArray creates a fixed-length-n int array value, defaulting to
// zeroes.
func NewIntArray(n int) Value {
	return Value{kind: KindIntArray, arrLen: n, ia: make([]int, n)}
}

// NewFloatArray creates a fixed-length-n float64 array value,
// defaulting to zeroes.
func NewFloatArray(n int) Value {
	return Value{kind: KindFloatArray, arrLen: n, fa: make([]float64, n)}
}

// NewOptional returns a copy of v in its None state, usable as the
// "empty" starting value of an Optional<T> style (spec §4.3).
func NewOptional(v Value) Value {
	v.none = true
	return v
}

func (v Value) Kind() Kind  { return v.kind }
func (v Value) IsNone() bool { return v.none }

// Len returns the number of scalar components held (0 if none).
func (v Value) Len() int {
	if v.none {
		return 0
	}
	switch v.kind {
	case KindInt, KindFloat, KindString:
		return 1
	case KindIntArray, KindIntVector:
		return len(v.ia)
	case KindFloatArray, KindFloatVector:
		return len(v.fa)
	case KindStringVector:
		return len(v.sv)
	case KindRGB:
		return 3
	}
	return 0
}

// tileInt fills a length-n slice by cycling through vals: result[i] =
// vals[i % len(vals)]. This single rule implements both "shorter lists
// cycle/replicate" and "longer lists truncate" from §4.3.
func tileInt(vals []int, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = vals[i%len(vals)]
	}
	return out
}

func tileFloat(vals []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = vals[i%len(vals)]
	}
	return out
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	return fields
}

func parseInt(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X") {
		n, err := strconv.ParseInt(tok[2:], 16, 64)
		return int(n), err
	}
	if strings.HasPrefix(tok, "-0x") || strings.HasPrefix(tok, "-0X") {
		n, err := strconv.ParseInt(tok[3:], 16, 64)
		return -int(n), err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	return int(n), err
}

// ParseString sets v's value from s, following the §4.3 parsing rules
// for v's Kind. An empty/whitespace string always parses as None
// (Optional<T> semantics), matching the source behavior for every
// representation, not just ones explicitly wrapped as optional.
func (v *Value) ParseString(s string) error {
	if strings.TrimSpace(s) == "" {
		v.none = true
		return nil
	}
	v.none = false
	switch v.kind {
	case KindInt:
		n, err := parseInt(s)
		if err != nil {
			return fmt.Errorf("style: bad int %q: %w", s, err)
		}
		v.i = n
		return nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("style: bad float %q: %w", s, err)
		}
		v.f = f
		return nil
	case KindIntArray, KindIntVector:
		toks := splitList(s)
		vals := make([]int, len(toks))
		for i, tok := range toks {
			n, err := parseInt(tok)
			if err != nil {
				return fmt.Errorf("style: bad int %q: %w", tok, err)
			}
			vals[i] = n
		}
		if v.kind == KindIntArray {
			v.ia = tileInt(vals, v.arrLen)
		} else {
			v.ia = vals
		}
		return nil
	case KindFloatArray, KindFloatVector:
		toks := splitList(s)
		vals := make([]float64, len(toks))
		for i, tok := range toks {
			f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				return fmt.Errorf("style: bad float %q: %w", tok, err)
			}
			vals[i] = f
		}
		if v.kind == KindFloatArray {
			v.fa = tileFloat(vals, v.arrLen)
		} else {
			v.fa = vals
		}
		return nil
	case KindString:
		v.s = s
		return nil
	case KindStringVector:
		v.sv = splitList(s)
		return nil
	case KindRGB:
		if named, ok := colorname.Lookup(s); ok {
			v.rgb = named
			return nil
		}
		toks := splitList(s)
		if len(toks) != 3 {
			return fmt.Errorf("style: bad RGB %q: want a color name or 3 floats", s)
		}
		var comps [3]float64
		for i, tok := range toks {
			f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				return fmt.Errorf("style: bad RGB component %q: %w", tok, err)
			}
			comps[i] = f
		}
		v.rgb = colorname.RGB{R: comps[0], G: comps[1], B: comps[2]}
		return nil
	}
	return fmt.Errorf("style: unknown kind %v", v.kind)
}

// String serializes v back to its string form.
func (v Value) String() string {
	if v.none {
		return ""
	}
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindIntArray, KindIntVector:
		parts := make([]string, len(v.ia))
		for i, n := range v.ia {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, " ")
	case KindFloatArray, KindFloatVector:
		parts := make([]string, len(v.fa))
		for i, f := range v.fa {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, " ")
	case KindString:
		return v.s
	case KindStringVector:
		return strings.Join(v.sv, " ")
	case KindRGB:
		return colorname.RGB(v.rgb).Hex()
	}
	return ""
}

// Ints projects v onto an []int, if its Kind supports it.
func (v Value) Ints() ([]int, bool) {
	if v.none {
		return nil, false
	}
	switch v.kind {
	case KindInt:
		return []int{v.i}, true
	case KindIntArray, KindIntVector:
		return v.ia, true
	case KindFloat:
		return []int{int(v.f)}, true
	case KindFloatArray, KindFloatVector:
		out := make([]int, len(v.fa))
		for i, f := range v.fa {
			out[i] = int(f)
		}
		return out, true
	}
	return nil, false
}

// Floats projects v onto an []float64, if its Kind supports it.
func (v Value) Floats() ([]float64, bool) {
	if v.none {
		return nil, false
	}
	switch v.kind {
	case KindFloat:
		return []float64{v.f}, true
	case KindFloatArray, KindFloatVector:
		return v.fa, true
	case KindInt:
		return []float64{float64(v.i)}, true
	case KindIntArray, KindIntVector:
		out := make([]float64, len(v.ia))
		for i, n := range v.ia {
			out[i] = float64(n)
		}
		return out, true
	case KindRGB:
		return []float64{v.rgb.R, v.rgb.G, v.rgb.B}, true
	}
	return nil, false
}

// Strs projects v onto an []string, if its Kind supports it.
func (v Value) Strs() ([]string, bool) {
	if v.none {
		return nil, false
	}
	switch v.kind {
	case KindString:
		return []string{v.s}, true
	case KindStringVector:
		return v.sv, true
	}
	return nil, false
}

// RGB returns the color value, if v.Kind() == KindRGB and it is set.
func (v Value) RGB() (colorname.RGB, bool) {
	if v.kind != KindRGB || v.none {
		return colorname.RGB{}, false
	}
	return v.rgb, true
}

// HasString reports whether v's string/string-vector representation
// contains s as a token (used for class-set membership tests).
func (v Value) HasString(s string) bool {
	switch v.kind {
	case KindString:
		return !v.none && v.s == s
	case KindStringVector:
		for _, tok := range v.sv {
			if tok == s {
				return true
			}
		}
	}
	return false
}

// Compare compares v to other. ok is false if they are of different
// Kind (incomparable), or either is none.
func (v Value) Compare(other Value) (result int, ok bool) {
	if v.kind != other.kind || v.none || other.none {
		return 0, false
	}
	switch v.kind {
	case KindInt:
		return cmpOrdered(v.i, other.i), true
	case KindFloat:
		return cmpOrdered(v.f, other.f), true
	case KindString:
		return cmpOrdered(v.s, other.s), true
	case KindIntArray, KindIntVector:
		return cmpSlice(v.ia, other.ia), true
	case KindFloatArray, KindFloatVector:
		return cmpSlice(v.fa, other.fa), true
	case KindStringVector:
		return cmpSlice(v.sv, other.sv), true
	case KindRGB:
		a := [3]float64{v.rgb.R, v.rgb.G, v.rgb.B}
		b := [3]float64{other.rgb.R, other.rgb.G, other.rgb.B}
		return cmpSlice(a[:], b[:]), true
	}
	return 0, false
}

func cmpOrdered[T int | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpSlice[T int | float64 | string](a, b []T) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := cmpOrdered(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpOrdered(len(a), len(b))
}
