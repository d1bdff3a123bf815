// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package shape draws simple shapes into an image1bit.VerticalLSB.
//
// # Memory layout
//
// image1bit.VerticalLSB stores the image the way monochrome OLED controllers
// keep their display RAM: horizontal pages of 8 rows, one byte per column,
// the least significant bit being the top row of the page:
//
//	byte index = x + (y/8)*Stride
//	bit        = y % 8
//
// Drawing goes through SetBit and BitAt, transfer code sends Pix as is.
//
// All functions clip to the image bounds.
package shape

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Clear turns all the pixels Off.
func Clear(dst *image1bit.VerticalLSB) {
	Fill(dst, image1bit.Off)
}

// Fill sets all the pixels to b.
func Fill(dst *image1bit.VerticalLSB, b image1bit.Bit) {
	v := byte(0)
	if b {
		v = 0xFF
	}
	for i := range dst.Pix {
		dst.Pix[i] = v
	}
}

// HLine draws a horizontal line from left to right, excluding right, at row y.
func HLine(dst *image1bit.VerticalLSB, left, right, y int, b image1bit.Bit) {
	for x := left; x < right; x++ {
		dst.SetBit(x, y, b)
	}
}

// VLine draws a vertical line from top to bottom, excluding bottom, at column
// x.
func VLine(dst *image1bit.VerticalLSB, top, bottom, x int, b image1bit.Bit) {
	for y := top; y < bottom; y++ {
		dst.SetBit(x, y, b)
	}
}

// DrawRect draws the 1 pixel outline of r.
func DrawRect(dst *image1bit.VerticalLSB, r image.Rectangle, b image1bit.Bit) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	HLine(dst, r.Min.X, r.Max.X, r.Min.Y, b)
	HLine(dst, r.Min.X, r.Max.X, r.Max.Y-1, b)
	VLine(dst, r.Min.Y, r.Max.Y, r.Min.X, b)
	VLine(dst, r.Min.Y, r.Max.Y, r.Max.X-1, b)
}

// FillRect sets all the pixels of r to b.
func FillRect(dst *image1bit.VerticalLSB, r image.Rectangle, b image1bit.Bit) {
	r = r.Canon().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		HLine(dst, r.Min.X, r.Max.X, y, b)
	}
}

// DrawProgressBar draws a bordered bar with its top-left corner at (x, y)
// filled from the left proportionally to percent.
//
// percent is clamped to [0, 100]. The interior is width-2 columns wide and
// round((width-2)*percent/100) of them are filled; the rest of the interior is
// cleared, so drawing the same bar again yields the same pixels and drawing a
// lower value shrinks the fill.
func DrawProgressBar(dst *image1bit.VerticalLSB, x, y, width, height, percent int) {
	if width <= 0 || height <= 0 {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	DrawRect(dst, image.Rect(x, y, x+width, y+height), image1bit.On)
	inner := image.Rect(x+1, y+1, x+width-1, y+height-1)
	if inner.Empty() {
		return
	}
	fill := FillWidth(inner.Dx(), percent)
	split := inner.Min.X + fill
	FillRect(dst, image.Rect(inner.Min.X, inner.Min.Y, split, inner.Max.Y), image1bit.On)
	FillRect(dst, image.Rect(split, inner.Min.Y, inner.Max.X, inner.Max.Y), image1bit.Off)
}

// FillWidth returns the number of filled columns for an interior of w columns
// at percent, rounded half up. percent must already be in [0, 100].
func FillWidth(w, percent int) int {
	return (w*percent + 50) / 100
}
