// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a fake I²C bus with an emulated SSD1306 on it
// that outputs to terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your super nice OLED panel to come by mail.
//
// The emulation covers what a frame transfer needs: the command/data control
// bytes, horizontal addressing with the column and page range commands,
// display on/off and inversion. Every time the RAM pointer wraps back to the
// start of the addressing window, the frame is printed.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H int
	// Addr is the emulated device address; 0x3C when 0.
	Addr    uint16
	Palette *ansi256.Palette
	// On and Off are the colors of lit and dark pixels. White on black when
	// both are zero.
	On, Off color.NRGBA
	// Out receives the rendering; stdout when nil.
	Out io.Writer

	_ struct{}
}

// Dev is an emulated SSD1306 behind a fake I²C bus.
type Dev struct {
	w       io.Writer
	addr    uint16
	palette ansi256.Palette
	on, off string

	mu        sync.Mutex
	frame     *image1bit.VerticalLSB
	pages     int
	colStart  int
	colEnd    int
	pageStart int
	pageEnd   int
	col       int
	page      int
	pending   []byte
	displayOn bool
	inverted  bool
	speed     physic.Frequency
	frames    int
	buf       bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	addr := opts.Addr
	if addr == 0 {
		addr = 0x3C
	}
	on, off := opts.On, opts.Off
	if on == (color.NRGBA{}) && off == (color.NRGBA{}) {
		on = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
		off = color.NRGBA{0, 0, 0, 0xFF}
	}
	out := opts.Out
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       out,
		addr:    addr,
		palette: *p,
		frame:   image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
		pages:   (opts.H + 7) / 8,
	}
	d.on = d.palette.Block(on)
	d.off = d.palette.Block(off)
	d.colEnd = opts.W - 1
	d.pageEnd = d.pages - 1
	return d
}

func (d *Dev) String() string {
	return "Screen2D"
}

// Tx implements i2c.Bus.
//
// Writes must start with a control byte: 0x00 for commands, 0x40 for data.
// Reads return the status byte, which is always 0.
func (d *Dev) Tx(addr uint16, w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if addr != d.addr {
		return fmt.Errorf("screen2d: no device at address %#x", addr)
	}
	for i := range r {
		r[i] = 0
	}
	if len(w) == 0 {
		return nil
	}
	switch w[0] {
	case 0x00:
		d.command(w[1:])
	case 0x40:
		return d.data(w[1:])
	default:
		return fmt.Errorf("screen2d: unsupported control byte %#x", w[0])
	}
	return nil
}

// SetSpeed implements i2c.Bus. The speed is only recorded.
func (d *Dev) SetSpeed(f physic.Frequency) error {
	if f <= 0 {
		return errors.New("screen2d: invalid speed")
	}
	d.mu.Lock()
	d.speed = f
	d.mu.Unlock()
	return nil
}

// Close implements i2c.BusCloser.
//
// It resets the terminal colors.
func (d *Dev) Close() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Frame returns a copy of the emulated display RAM.
func (d *Dev) Frame() *image1bit.VerticalLSB {
	d.mu.Lock()
	defer d.mu.Unlock()
	img := image1bit.NewVerticalLSB(d.frame.Rect)
	copy(img.Pix, d.frame.Pix)
	return img
}

// Frames returns the number of frames printed so far.
func (d *Dev) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// command consumes command bytes. Commands can be split across transactions,
// incomplete ones are kept until their arguments arrive.
func (d *Dev) command(c []byte) {
	d.pending = append(d.pending, c...)
	for len(d.pending) != 0 {
		n := argCount(d.pending[0])
		if len(d.pending) < 1+n {
			return
		}
		d.apply(d.pending[0], d.pending[1:1+n])
		d.pending = d.pending[1+n:]
	}
}

func (d *Dev) apply(op byte, args []byte) {
	switch op {
	case 0x21:
		d.colStart, d.colEnd = int(args[0]&0x7F), int(args[1]&0x7F)
		d.col = d.colStart
	case 0x22:
		d.pageStart, d.pageEnd = int(args[0]&0x07), int(args[1]&0x07)
		d.page = d.pageStart
	case 0xA6:
		d.inverted = false
	case 0xA7:
		d.inverted = true
	case 0xAE:
		d.displayOn = false
	case 0xAF:
		d.displayOn = true
	}
}

// argCount returns the number of argument bytes following a command.
func argCount(op byte) int {
	switch op {
	case 0x26, 0x27:
		return 6
	case 0x29, 0x2A:
		return 5
	case 0x21, 0x22, 0xA3:
		return 2
	case 0x20, 0x81, 0x8D, 0xA8, 0xAD, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		return 1
	}
	return 0
}

// data writes bytes at the RAM pointer in horizontal addressing mode.
func (d *Dev) data(p []byte) error {
	w := d.frame.Rect.Dx()
	for _, v := range p {
		if d.col < w && d.page < d.pages {
			d.frame.Pix[d.page*w+d.col] = v
		}
		d.col++
		if d.col > d.colEnd {
			d.col = d.colStart
			d.page++
			if d.page > d.pageEnd {
				d.page = d.pageStart
				if err := d.refresh(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	h := d.frame.Rect.Dy()
	if d.frames != 0 {
		// Redraw in place.
		fmt.Fprintf(&d.buf, "\033[%dA", h)
	}
	for y := 0; y < h; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.frame.Rect.Dx(); x++ {
			lit := d.displayOn && bool(d.frame.BitAt(x, y)) != d.inverted
			if lit {
				_, _ = d.buf.WriteString(d.on)
			} else {
				_, _ = d.buf.WriteString(d.off)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.frames++
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ i2c.BusCloser = &Dev{}
var _ fmt.Stringer = &Dev{}
