// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine map: scale, then rotate, then translate, in
// that order. Rotation is in degrees.
type Transform struct {
	Translation Point
	RotationDeg float64
	Scale       float64
}

// Identity is the no-op transform.
var Identity = Transform{Scale: 1}

func (t Transform) IsIdentity() bool {
	return t.Translation == Origin && t.RotationDeg == 0 && t.Scale == 1
}

// Mat3 builds the 3x3 homogeneous matrix for t (column-major, as
// mathgl stores it), composed scale -> rotate -> translate.
func (t Transform) Mat3() mgl64.Mat3 {
	r := t.RotationDeg * math.Pi / 180
	s, c := math.Sin(r), math.Cos(r)
	k := t.Scale
	scale := mgl64.Mat3{k, 0, 0, 0, k, 0, 0, 0, 1}
	rot := mgl64.Mat3{c, s, 0, -s, c, 0, 0, 0, 1}
	trans := mgl64.Mat3{1, 0, 0, 0, 1, 0, t.Translation.X, t.Translation.Y, 1}
	return trans.Mul3(rot).Mul3(scale)
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Point) Point {
	if t.IsIdentity() {
		return p
	}
	v := t.Mat3().Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Point{X: v[0], Y: v[1]}
}

// Compose returns the transform equivalent to applying o first, then t:
// composed.Apply(p) == t.Apply(o.Apply(p)).
//
// Because both transforms share the same scale-rotate-translate
// ordering, composing them as matrices and re-deriving (translation,
// rotation, scale) is exact only when rotation/scale are uniform, which
// holds for every Transform this package produces.
func (t Transform) Compose(o Transform) Transform {
	m := t.Mat3().Mul3(o.Mat3())
	scale := math.Hypot(m[0], m[1])
	rot := math.Atan2(m[1], m[0]) * 180 / math.Pi
	return Transform{
		Translation: Point{X: m[6], Y: m[7]},
		RotationDeg: rot,
		Scale:       scale,
	}
}

// String renders the transform in the renderer's expected textual
// form, "translate(x y) rotate(deg) scale(s)", omitting any component
// that is the identity for that component.
func (t Transform) String() string {
	s := ""
	if t.Translation != Origin {
		s += fmt.Sprintf("translate(%g %g) ", t.Translation.X, t.Translation.Y)
	}
	if t.RotationDeg != 0 {
		s += fmt.Sprintf("rotate(%g) ", t.RotationDeg)
	}
	if t.Scale != 1 {
		s += fmt.Sprintf("scale(%g) ", t.Scale)
	}
	if s == "" {
		return ""
	}
	return s[:len(s)-1]
}
