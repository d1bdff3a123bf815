// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pideck/panel/ssd1306"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func newTest(w, h int) (*Dev, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(&Opts{W: w, H: h, Out: buf}), buf
}

func pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}
	return p
}

func TestFlushReproduced(t *testing.T) {
	for _, chunk := range []int{1, 16, 30, 32, 128} {
		d, buf := newTest(128, 32)
		opts := ssd1306.DefaultOpts
		opts.MaxChunk = chunk
		dev, err := ssd1306.NewI2C(d, &opts)
		if err != nil {
			t.Fatal(err)
		}
		pix := pattern(128 * 32 / 8)
		if err := dev.Flush(pix); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(pix, d.Frame().Pix); diff != "" {
			t.Fatalf("chunk %d: GDDRAM mismatch (-want +got):\n%s", chunk, diff)
		}
		if n := d.Frames(); n != 1 {
			t.Fatalf("chunk %d: %d frames", chunk, n)
		}
		if n := strings.Count(buf.String(), "\n"); n != 32 {
			t.Fatalf("chunk %d: %d lines", chunk, n)
		}
	}
}

func TestFlushTwice(t *testing.T) {
	d, buf := newTest(128, 32)
	dev, err := ssd1306.NewI2C(d, &ssd1306.Opts{W: 128, H: 32, MaxChunk: 32})
	if err != nil {
		t.Fatal(err)
	}
	first := pattern(512)
	if err := dev.Flush(first); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	second := make([]byte, 512)
	second[511] = 0x80
	if err := dev.Flush(second); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(second, d.Frame().Pix); diff != "" {
		t.Fatalf("GDDRAM mismatch (-want +got):\n%s", diff)
	}
	if n := d.Frames(); n != 2 {
		t.Fatalf("%d frames", n)
	}
	if !strings.HasPrefix(buf.String(), "\033[32A") {
		t.Fatalf("second frame should redraw in place: %q", buf.String()[:8])
	}
}

func TestDrawLit(t *testing.T) {
	d, buf := newTest(8, 8)
	dev, err := ssd1306.NewI2C(d, &ssd1306.Opts{W: 8, H: 8, MaxChunk: 4})
	if err != nil {
		t.Fatal(err)
	}
	img := image1bit.NewVerticalLSB(dev.Bounds())
	img.SetBit(0, 0, image1bit.On)
	if err := dev.Flush(img.Pix); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("%d lines", len(lines))
	}
	if strings.Count(lines[0], d.on) != 1 || strings.Count(lines[1], d.on) != 0 {
		t.Fatalf("unexpected rendering:\n%q\n%q", lines[0], lines[1])
	}

	// Inverted and then halted.
	if err := dev.Invert(true); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := dev.Flush(img.Pix); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if strings.Count(lines[1], d.on) != 8 {
		t.Fatalf("inverted line: %q", lines[1])
	}
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	d.mu.Lock()
	on := d.displayOn
	d.mu.Unlock()
	if on {
		t.Fatal("display should be off")
	}
}

func TestPartialWindow(t *testing.T) {
	d, _ := newTest(128, 32)
	// Columns 10..11 on page 1.
	if err := d.Tx(0x3C, []byte{0x00, 0x21, 10, 11, 0x22, 1, 1}, nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Tx(0x3C, []byte{0x40, 0xAA, 0x55}, nil); err != nil {
		t.Fatal(err)
	}
	got := d.Frame().Pix
	if got[128+10] != 0xAA || got[128+11] != 0x55 {
		t.Fatalf("got %#x %#x", got[128+10], got[128+11])
	}
	if n := d.Frames(); n != 1 {
		t.Fatalf("%d frames", n)
	}
}

func TestSplitCommand(t *testing.T) {
	d, _ := newTest(128, 32)
	if err := d.Tx(0x3C, []byte{0x00, 0x21, 4}, nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Tx(0x3C, []byte{0x00, 5, 0x22, 3, 3}, nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Tx(0x3C, []byte{0x40, 1, 2}, nil); err != nil {
		t.Fatal(err)
	}
	got := d.Frame().Pix
	if got[3*128+4] != 1 || got[3*128+5] != 2 {
		t.Fatalf("got %#x %#x", got[3*128+4], got[3*128+5])
	}
}

func TestErrors(t *testing.T) {
	d, _ := newTest(128, 32)
	if d.Tx(0x3D, []byte{0x00, 0xAF}, nil) == nil {
		t.Fatal("wrong address")
	}
	if d.Tx(0x3C, []byte{0x80, 0xAF}, nil) == nil {
		t.Fatal("unsupported control byte")
	}
	r := []byte{0xFF}
	if err := d.Tx(0x3C, nil, r); err != nil || r[0] != 0 {
		t.Fatal(err, r)
	}
	if d.SetSpeed(0) == nil {
		t.Fatal("invalid speed")
	}
	if err := d.SetSpeed(400 * physic.KiloHertz); err != nil {
		t.Fatal(err)
	}
	if s := d.String(); s != "Screen2D" {
		t.Fatal(s)
	}
}

func TestClose(t *testing.T) {
	d, buf := newTest(8, 8)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[0m\n" {
		t.Fatalf("%q", buf.String())
	}
}
