// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package logo provides splash screen bitmaps for the status panel.
//
// The built-in logo is compiled in. Custom ones can be composed at runtime
// with Compose or loaded from a PNG file.
package logo

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Size of the built-in logo.
const (
	Width  = 128
	Height = 32
)

// Default returns a copy of the built-in 128x32 logo.
func Default() *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))
	copy(img.Pix, defaultPix[:])
	return img
}

// FromImage converts src to a w x h 1 bit image, anchored at the top-left
// corner of src. Pixels brighter than half intensity are On.
func FromImage(src image.Image, w, h int) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))
	draw.Src.Draw(img, img.Bounds(), src, src.Bounds().Min)
	return img
}

// Compose renders a title card: a rounded border and title centered in it.
//
// face may be nil to use gg's default 7x13 face.
func Compose(w, h int, title string, face font.Face) *image1bit.VerticalLSB {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(0.5, 0.5, float64(w)-1, float64(h)-1, 3)
	dc.Stroke()
	if face != nil {
		dc.SetFontFace(face)
	}
	dc.DrawStringAnchored(title, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return FromImage(dc.Image(), w, h)
}

// LoadPNG loads a PNG file and converts it to a w x h 1 bit image.
func LoadPNG(path string, w, h int) (*image1bit.VerticalLSB, error) {
	src, err := gg.LoadPNG(path)
	if err != nil {
		return nil, fmt.Errorf("logo: %w", err)
	}
	return FromImage(src, w, h), nil
}
