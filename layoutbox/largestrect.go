// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layoutbox

import "math"

// FitLargestRectInRotated returns the largest axis-aligned rectangle
// (w,h), in the rotated frame's own axes, that fits inside a rectangle
// of width innerW, height innerH rotated by rotationDeg.
func FitLargestRectInRotated(innerW, innerH, rotationDeg float64) (w, h float64) {
	alpha := math.Mod(rotationDeg, 360)
	if alpha < 0 {
		alpha += 360
	}
	// normalize into a single quadrant of rotation behavior: beyond 90
	// degrees the same shape repeats (mod 180), and negative-sense
	// rotation is symmetric with positive.
	alpha = math.Mod(alpha, 180)
	if alpha > 90 {
		alpha = 180 - alpha
	}

	W, H := innerW, innerH
	flipped := false
	if W > H {
		W, H = H, W
		flipped = true
	}

	if alpha < 1e-9 {
		w, h = W, H
	} else if alpha > 90-1e-9 {
		w, h = H, W
	} else {
		a := alpha * math.Pi / 180
		t := math.Tan(a)
		s := math.Sin(2 * a)

		var x float64
		if alpha > 89.999 {
			x = 0.5
		} else if s < W/H {
			x = (H*t/W - t*t) / (1 - t*t)
		} else {
			x = 0.5
		}
		y := x * W / (H * t)
		yp := (W/H)*t*(1-x) + y

		h = math.Hypot(x*W, y*H)
		w = math.Hypot((1-x)*W, (yp-y)*H)
	}

	if flipped {
		w, h = h, w
	}
	return w, h
}
