// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package logo

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pideck/panel/shape"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestDefault(t *testing.T) {
	img := Default()
	if img.Bounds() != image.Rect(0, 0, Width, Height) {
		t.Fatal(img.Bounds())
	}
	if !bytes.Equal(img.Pix, defaultPix[:]) {
		t.Fatal("content mismatch")
	}
	// Rounded corners, straight edges.
	if img.BitAt(0, 0) || !img.BitAt(0, 2) || !img.BitAt(64, 0) || !img.BitAt(127, 16) {
		t.Fatal("unexpected border")
	}
	// Each call returns an independent copy.
	shape.Clear(img)
	if !Default().BitAt(64, 0) {
		t.Fatal("Default() shares its buffer")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewGray(image.Rect(10, 10, 30, 30))
	src.SetGray(10, 10, color.Gray{Y: 0xFF})
	src.SetGray(11, 10, color.Gray{Y: 0x10})
	src.SetGray(12, 12, color.Gray{Y: 0x90})
	img := FromImage(src, 8, 8)
	want := []byte{0x01, 0x00, 0x04, 0, 0, 0, 0, 0}
	if !bytes.Equal(img.Pix, want) {
		t.Fatalf("%#v", img.Pix)
	}
}

func TestCompose(t *testing.T) {
	img := Compose(128, 32, "Pi Deck", nil)
	if img.Bounds() != image.Rect(0, 0, 128, 32) {
		t.Fatal(img.Bounds())
	}
	if !img.BitAt(64, 0) || !img.BitAt(64, 31) || !img.BitAt(0, 16) || !img.BitAt(127, 16) {
		t.Fatal("missing border")
	}
	inner := 0
	for y := 4; y < 28; y++ {
		for x := 4; x < 124; x++ {
			if img.BitAt(x, y) {
				inner++
			}
		}
	}
	if inner == 0 {
		t.Fatal("missing title")
	}
}

func TestLoadPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	src.Set(3, 9, color.White)
	p := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	img, err := LoadPNG(p, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if img.BitAt(3, 9) != image1bit.On || img.BitAt(3, 8) != image1bit.Off {
		t.Fatal("unexpected content")
	}
	if _, err := LoadPNG(filepath.Join(t.TempDir(), "missing.png"), 16, 16); err == nil {
		t.Fatal("expected error")
	}
}
