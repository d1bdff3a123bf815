// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"bytes"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pideck/panel/shape"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func newBuffer() *image1bit.VerticalLSB {
	return image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
}

func TestLookup(t *testing.T) {
	if len(font5x8) != lastRune-firstRune+1 {
		t.Fatalf("font has %d glyphs", len(font5x8))
	}
	if g, ok := Lookup(' '); !ok || g != (Glyph{}) {
		t.Fatalf("Lookup(' ') = %v, %t", g, ok)
	}
	if g, ok := Lookup('A'); !ok || g != (Glyph{0x7E, 0x11, 0x11, 0x11, 0x7E}) {
		t.Fatalf("Lookup('A') = %v, %t", g, ok)
	}
	for _, r := range []rune{0, '\n', 0x7F, 'é', '☃'} {
		if g, ok := Lookup(r); ok || g != (Glyph{}) {
			t.Errorf("Lookup(%q) = %v, %t", r, g, ok)
		}
	}
}

func TestMeasure(t *testing.T) {
	data := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 6},
		{"Pi Deck", 42},
		{"é!", 12},
	}
	for _, line := range data {
		if got := Measure(line.text); got != line.want {
			t.Errorf("Measure(%q) = %d; want %d", line.text, got, line.want)
		}
	}
}

func TestDrawString(t *testing.T) {
	img := newBuffer()
	if x := DrawString(img, 0, 0, "AB"); x != 12 {
		t.Fatalf("DrawString() = %d", x)
	}
	want := make([]byte, 512)
	copy(want[0:], []byte{0x7E, 0x11, 0x11, 0x11, 0x7E})
	copy(want[6:], []byte{0x7F, 0x49, 0x49, 0x49, 0x36})
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Fatalf("Pix (-want +got):\n%s", diff)
	}

	// Same line again, no accumulation.
	DrawString(img, 0, 0, "AB")
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Fatalf("Pix (-want +got):\n%s", diff)
	}
}

func TestDrawStringUnaligned(t *testing.T) {
	img := newBuffer()
	DrawString(img, 0, 4, "!")
	if img.Pix[2] != 0xF0 || img.Pix[128+2] != 0x05 {
		t.Fatalf("page 0 %#x, page 1 %#x", img.Pix[2], img.Pix[128+2])
	}
	for _, i := range []int{0, 1, 3, 4, 128, 129, 131, 132} {
		if img.Pix[i] != 0 {
			t.Fatalf("Pix[%d] = %#x", i, img.Pix[i])
		}
	}
}

func TestDrawStringUnsupported(t *testing.T) {
	img := newBuffer()
	shape.Fill(img, image1bit.On)
	if x := DrawString(img, 10, 8, "é"); x != 16 {
		t.Fatalf("DrawString() = %d", x)
	}
	for x := 10; x < 15; x++ {
		if img.Pix[128+x] != 0 {
			t.Fatalf("column %d = %#x; want blank", x, img.Pix[128+x])
		}
	}
	// Spacing column untouched.
	if img.Pix[128+15] != 0xFF {
		t.Fatalf("spacing column = %#x", img.Pix[128+15])
	}
}

func TestDrawStringClipped(t *testing.T) {
	img := newBuffer()
	if x := DrawString(img, 120, 0, "ABC"); x != 138 {
		t.Fatalf("DrawString() = %d", x)
	}
	if !bytes.Equal(img.Pix[120:125], []byte{0x7E, 0x11, 0x11, 0x11, 0x7E}) {
		t.Fatalf("A = %#v", img.Pix[120:125])
	}
	if !bytes.Equal(img.Pix[126:128], []byte{0x7F, 0x49}) {
		t.Fatalf("B = %#v", img.Pix[126:128])
	}
	// Nothing wrapped to the next page.
	if !bytes.Equal(img.Pix[128:], make([]byte, 512-128)) {
		t.Fatal("text wrapped to the next page")
	}

	shape.Clear(img)
	DrawString(img, -3, 0, "A")
	if !bytes.Equal(img.Pix[0:3], []byte{0x11, 0x7E, 0x00}) {
		t.Fatalf("left clip = %#v", img.Pix[0:3])
	}
	DrawString(img, 0, 30, "|")
	if img.Pix[3*128+2] != 0xC0 {
		t.Fatalf("bottom clip = %#x", img.Pix[3*128+2])
	}
}

func TestDrawFace(t *testing.T) {
	img := newBuffer()
	x := DrawFace(img, Basic, 2, 0, "Hello")
	if x != 2+5*7 {
		t.Fatalf("DrawFace() = %d", x)
	}
	if bytes.Equal(img.Pix, make([]byte, len(img.Pix))) {
		t.Fatal("nothing drawn")
	}
	for y := 0; y < 32; y++ {
		for xx := x; xx < 128; xx++ {
			if img.BitAt(xx, y) {
				t.Fatalf("pixel (%d, %d) set past the end of the text", xx, y)
			}
		}
	}
}

func TestGoRegular(t *testing.T) {
	face, err := GoRegular(12)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	img := newBuffer()
	if x := DrawFace(img, face, 0, 0, "Pi"); x <= 0 {
		t.Fatalf("DrawFace() = %d", x)
	}
	if bytes.Equal(img.Pix, make([]byte, len(img.Pix))) {
		t.Fatal("nothing drawn")
	}
}

func TestTrueTypeInvalid(t *testing.T) {
	if _, err := TrueType([]byte("not a font"), 10); err == nil {
		t.Fatal("expected error")
	}
}
