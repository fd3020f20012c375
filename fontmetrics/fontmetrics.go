// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontmetrics provides the text-shaping collaborator consumed
// by Text element intrinsic-bbox computation: given a string and a
// font style, estimate (width, ascender, descender) in millimeters.
// Estimator is a deterministic grapheme-cluster-counting approximation
// requiring no font file; FaceMetrics measures real glyph advances from
// a parsed TrueType font for callers that have one.
package fontmetrics

import (
	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
)

// Style carries the subset of font properties that affect metrics.
type Style struct {
	SizePoints float64
	Bold       bool
	Italic     bool
}

// Metrics is the opaque text-measurement collaborator the core depends
// on. Implementations need not shape real glyphs.
type Metrics interface {
	Measure(text string, style Style) (width, ascender, descender float64)
}

// pointsToMM converts a typographic point (1/72 inch) to millimeters.
const pointsToMM = 25.4 / 72

// Estimator is a fixed-width-per-grapheme-cluster heuristic: every
// grapheme cluster (as segmented by uniseg, so combining marks and
// multi-rune emoji count once) occupies a fraction of the font's em
// size, with bold widening that fraction slightly.
type Estimator struct {
	// AdvanceFraction is the per-cluster advance as a fraction of the
	// em size; defaults to 0.6 (a typical average for proportional
	// Latin text) when zero.
	AdvanceFraction float64
}

func (est Estimator) advanceFraction(bold bool) float64 {
	f := est.AdvanceFraction
	if f <= 0 {
		f = 0.6
	}
	if bold {
		f *= 1.08
	}
	return f
}

// Measure implements Metrics.
func (est Estimator) Measure(text string, style Style) (width, ascender, descender float64) {
	emMM := style.SizePoints * pointsToMM
	n := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		n++
	}
	width = float64(n) * emMM * est.advanceFraction(style.Bold)
	// conventional typographic ratios: ascender ~0.75em above baseline,
	// descender ~0.25em below.
	ascender = emMM * 0.75
	descender = emMM * 0.25
	if style.Italic {
		width *= 1.02
	}
	return width, ascender, descender
}

const dotsPerInch = 72.0

// FaceMetrics measures real glyph advances and vertical metrics from a
// parsed TrueType font, for callers that have an actual font file
// rather than wanting Estimator's grapheme-count heuristic.
type FaceMetrics struct {
	tt *truetype.Font
}

// NewFaceMetrics parses a TrueType/OpenType font from data.
func NewFaceMetrics(data []byte) (*FaceMetrics, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &FaceMetrics{tt: tt}, nil
}

// Measure implements Metrics using the font's real glyph advances at
// style.SizePoints, synthesizing bold/italic by skew/weight factors
// since the wrapped font has no distinct bold/italic outlines of its
// own.
func (fm *FaceMetrics) Measure(text string, style Style) (width, ascender, descender float64) {
	face := truetype.NewFace(fm.tt, &truetype.Options{
		Size:    style.SizePoints,
		DPI:     dotsPerInch,
		Hinting: font.HintingNone,
	})
	adv := font.MeasureString(face, text)
	width = float64(adv) / 64 * pointsToMM
	if style.Bold {
		width *= 1.08
	}
	if style.Italic {
		width *= 1.02
	}
	m := face.Metrics()
	ascender = float64(m.Ascent) / 64 * pointsToMM
	descender = float64(m.Descent) / 64 * pointsToMM
	return width, ascender, descender
}
