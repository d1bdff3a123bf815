// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Basic is a 7x13 bitmap face that needs no parsing.
var Basic font.Face = basicfont.Face7x13

// DrawFace draws one line of text with face, with the top-left corner of the
// line at (x, y).
//
// It returns the x coordinate following the last character.
func DrawFace(dst draw.Image, face font.Face, x, y int, text string) int {
	d := font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{C: image1bit.On},
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return d.Dot.X.Ceil()
}

// TrueType parses a TrueType font and returns a face of the given size in
// points at 72 DPI, so one point is one pixel.
func TrueType(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// GoRegular returns the Go Regular font at the given size.
func GoRegular(size float64) (font.Face, error) {
	return TrueType(goregular.TTF, size)
}
