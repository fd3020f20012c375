// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Margin is a pair of non-negative reals (Low, High) giving the margin
// applied at the low and high end of a single axis.
type Margin struct {
	Low, High float64
}

func (m Margin) Total() float64 { return m.Low + m.High }

// UniformMargin builds a Margin with equal Low and High.
func UniformMargin(v float64) Margin { return Margin{Low: v, High: v} }

// MBox is a pair of Margins, one per axis.
type MBox struct {
	X, Y Margin
}

func UniformMBox(v float64) MBox {
	m := UniformMargin(v)
	return MBox{X: m, Y: m}
}
