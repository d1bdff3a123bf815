// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package statuspanel draws a status screen made of text lines, a progress
// bar and a splash logo on a small monochrome OLED panel.
//
// Drawing only touches the in-memory frame buffer; nothing reaches the panel
// until Present or ShowSplashScreen is called. A Display is not safe for
// concurrent use.
package statuspanel

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/pideck/panel/glyph"
	"github.com/pideck/panel/logo"
	"github.com/pideck/panel/shape"
	"github.com/pideck/panel/ssd1306"
	"golang.org/x/image/font"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Transport sends a whole page-major frame to the panel.
//
// *ssd1306.Dev implements it.
type Transport interface {
	Flush(pix []byte) error
}

// Opts is the panel configuration.
type Opts struct {
	ssd1306.Opts
	// Logo is shown by ShowSplashScreen. It must be exactly W×H. When nil, the
	// built-in logo is used on 128×32 panels and a plain bordered card on
	// other sizes.
	Logo *image1bit.VerticalLSB
}

// DefaultOpts is the 128×32 I²C panel at address 0x3C.
var DefaultOpts = Opts{Opts: ssd1306.DefaultOpts}

// Display is a frame buffer bound to a panel.
type Display struct {
	t    Transport
	buf  *image1bit.VerticalLSB
	logo *image1bit.VerticalLSB
}

// NewI2C initializes the controller on an I²C bus and returns a Display ready
// to draw.
func NewI2C(b i2c.Bus, opts *Opts) (*Display, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	dev, err := ssd1306.NewI2C(b, &opts.Opts)
	if err != nil {
		return nil, err
	}
	return New(dev, opts)
}

// NewSPI initializes the controller on a 4-wire SPI port and returns a
// Display ready to draw.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Display, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	dev, err := ssd1306.NewSPI(p, dc, &opts.Opts)
	if err != nil {
		return nil, err
	}
	return New(dev, opts)
}

// New returns a Display that presents through an already configured
// transport.
func New(t Transport, opts *Opts) (*Display, error) {
	if t == nil {
		return nil, errors.New("statuspanel: nil transport")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	l := opts.Logo
	if l == nil {
		if opts.W == logo.Width && opts.H == logo.Height {
			l = logo.Default()
		} else {
			l = logo.Compose(opts.W, opts.H, "", nil)
		}
	}
	return &Display{
		t:    t,
		buf:  image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
		logo: l,
	}, nil
}

func (d *Display) String() string {
	if s, ok := d.t.(fmt.Stringer); ok {
		return fmt.Sprintf("statuspanel.Display{%s}", s)
	}
	return fmt.Sprintf("statuspanel.Display{%s}", d.buf.Rect.Max)
}

// Bounds implements image.Image-like sizing.
func (d *Display) Bounds() image.Rectangle {
	return d.buf.Rect
}

// Width returns the panel width in pixels.
func (d *Display) Width() int {
	return d.buf.Rect.Dx()
}

// Height returns the panel height in pixels.
func (d *Display) Height() int {
	return d.buf.Rect.Dy()
}

// Buffer returns the frame buffer. Changes show up on the next Present.
func (d *Display) Buffer() *image1bit.VerticalLSB {
	return d.buf
}

// Clear turns every pixel of the frame buffer off. The panel is not updated.
func (d *Display) Clear() {
	shape.Clear(d.buf)
}

// DrawText draws one line of text with the built-in 5×8 font, (x, y) being
// the top-left corner of the first glyph. It returns the x position after the
// last glyph.
func (d *Display) DrawText(x, y int, text string) int {
	return glyph.DrawString(d.buf, x, y, text)
}

// DrawTextFace draws one line of text with any font face, (x, y) being the
// top-left corner of the line.
func (d *Display) DrawTextFace(face font.Face, x, y int, text string) int {
	return glyph.DrawFace(d.buf, face, x, y, text)
}

// DrawProgressBar draws a bordered bar filled to percent, clamped to
// [0, 100].
func (d *Display) DrawProgressBar(x, y, width, height, percent int) {
	shape.DrawProgressBar(d.buf, x, y, width, height, percent)
}

// DrawImage copies src onto the frame buffer, converting each pixel to on or
// off.
func (d *Display) DrawImage(r image.Rectangle, src image.Image, sp image.Point) {
	draw.Draw(d.buf, r, src, sp, draw.Src)
}

// Present transfers the frame buffer to the panel.
//
// On failure the frame buffer is left untouched so Present can be retried.
func (d *Display) Present() error {
	return d.t.Flush(d.buf.Pix)
}

// ShowSplashScreen replaces the frame buffer with the logo and presents it.
func (d *Display) ShowSplashScreen() error {
	copy(d.buf.Pix, d.logo.Pix)
	return d.Present()
}

// Halt turns the panel off when the transport supports it.
func (d *Display) Halt() error {
	if r, ok := d.t.(conn.Resource); ok {
		return r.Halt()
	}
	return nil
}

func (o *Opts) validate() error {
	if o == nil {
		return errors.New("statuspanel: nil options")
	}
	if o.W <= 0 || o.H <= 0 {
		return fmt.Errorf("statuspanel: invalid size %dx%d", o.W, o.H)
	}
	if o.H%8 != 0 {
		return fmt.Errorf("statuspanel: height %d is not a multiple of 8", o.H)
	}
	if o.Logo != nil {
		if s := o.Logo.Rect.Size(); s.X != o.W || s.Y != o.H {
			return fmt.Errorf("statuspanel: logo is %dx%d, panel is %dx%d", s.X, s.Y, o.W, o.H)
		}
	}
	return nil
}
