// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph renders text into an image1bit.VerticalLSB.
//
// The built-in font is a fixed 5x8 bitmap covering printable ASCII. Each glyph
// column is one byte with the same bit order as a display page, so a glyph
// drawn at a y multiple of 8 maps to whole bytes of the frame buffer.
//
// Text can also be drawn with any golang.org/x/image/font.Face, see DrawFace.
package glyph

import (
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Glyph size in pixels.
const (
	Width  = 5
	Height = 8
	// Advance is the horizontal distance between two glyphs, including one
	// column of spacing.
	Advance = Width + 1
)

const (
	firstRune = 0x20
	lastRune  = 0x7E
)

// Glyph is the bitmap of one character, one byte per column with the LSB at
// the top.
type Glyph [Width]byte

// Lookup returns the glyph for r.
//
// It returns a blank glyph and false when r is not in the font.
func Lookup(r rune) (Glyph, bool) {
	if r < firstRune || r > lastRune {
		return Glyph{}, false
	}
	return Glyph(font5x8[r-firstRune]), true
}

// Measure returns the width in pixels of text when drawn with DrawString.
func Measure(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * Advance
}

// DrawString draws one line of text with its top-left corner at (x, y).
//
// Characters not in the font are drawn as blank cells. Columns falling outside
// dst are skipped; the text is never wrapped. Each glyph cell overwrites the
// pixels below it, the spacing column is left as is.
//
// It returns the x coordinate following the last character.
func DrawString(dst *image1bit.VerticalLSB, x, y int, text string) int {
	b := dst.Bounds()
	for _, r := range text {
		if x >= b.Max.X {
			// Clipped; keep counting so the return value stays consistent.
			x += Advance
			continue
		}
		g, _ := Lookup(r)
		g.draw(dst, x, y)
		x += Advance
	}
	return x
}

func (g Glyph) draw(dst *image1bit.VerticalLSB, x, y int) {
	b := dst.Bounds()
	for col, bits := range g {
		px := x + col
		if px < b.Min.X || px >= b.Max.X {
			continue
		}
		for row := 0; row < Height; row++ {
			dst.SetBit(px, y+row, image1bit.Bit(bits&(1<<uint(row)) != 0))
		}
	}
}
