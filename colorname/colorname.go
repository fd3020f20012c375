// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorname is the static web-color-name-to-RGB database (§6
// of the engine spec). It is populated once at init time and treated
// as an immutable map thereafter.
package colorname

import (
	"fmt"
	"strings"

	colorsv1 "gopkg.in/go-playground/colors.v1"
)

// RGB is a color as three components in [0,1].
type RGB struct {
	R, G, B float64
}

// names is a representative subset of the CSS/SVG named colors; the
// full ~150-name table is mechanical enumeration and not the
// interesting part of this engine.
var names = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
	"none":    "#000000",
}

// Table is the resolved name->RGB map, built once at init from names
// using gopkg.in/go-playground/colors.v1's hex parser.
var Table map[string]RGB

func init() {
	Table = make(map[string]RGB, len(names))
	for name, hex := range names {
		hc, err := colorsv1.ParseHEX(hex)
		if err != nil {
			panic(fmt.Sprintf("colorname: bad builtin hex %q for %q: %v", hex, name, err))
		}
		rgb := hc.ToRGB()
		Table[name] = RGB{
			R: float64(rgb.R) / 255,
			G: float64(rgb.G) / 255,
			B: float64(rgb.B) / 255,
		}
	}
}

// Lookup resolves a case-insensitive color name. ok is false if name is
// not in the table.
func Lookup(name string) (RGB, bool) {
	c, ok := Table[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Hex renders c as a 6-hex-digit color, "#rrggbb", per the renderer's
// output format.
func (c RGB) Hex() string {
	clamp := func(v float64) int {
		i := int(v*255 + 0.5)
		if i < 0 {
			return 0
		}
		if i > 255 {
			return 255
		}
		return i
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}
