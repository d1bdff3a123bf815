// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// statuspanel shows a splash logo then a few status frames on an SSD1306
// OLED panel, or in the terminal with -term.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pideck/panel/glyph"
	"github.com/pideck/panel/logo"
	"github.com/pideck/panel/screen2d"
	"github.com/pideck/panel/ssd1306"
	"github.com/pideck/panel/statuspanel"
	"golang.org/x/image/font"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func loadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return glyph.GoRegular(size)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return glyph.TrueType(b, size)
}

// checkAddr rejects values that are not 7-bit I²C addresses.
func checkAddr(addr int) error {
	if addr < 0 || addr > 0x7F {
		return fmt.Errorf("invalid I²C address %#x", addr)
	}
	return nil
}

func openBus(name string, term bool, w, h int) (i2c.BusCloser, error) {
	if term {
		return screen2d.New(&screen2d.Opts{W: w, H: h}), nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}

func run(d *statuspanel.Display, face font.Face, n int, interval time.Duration) error {
	start := time.Now()
	for i := 0; i <= n; i++ {
		percent := 0
		if n != 0 {
			percent = i * 100 / n
		}
		d.Clear()
		if face != nil {
			d.DrawTextFace(face, 0, 0, "Status")
		} else {
			d.DrawText(0, 0, "Status")
		}
		d.DrawText(0, 8, fmt.Sprintf("frame %d/%d", i, n))
		d.DrawText(0, 16, fmt.Sprintf("up %s", time.Since(start).Round(time.Second)))
		d.DrawProgressBar(0, d.Height()-8, d.Width(), 8, percent)
		if err := d.Present(); err != nil {
			var te *ssd1306.TransportError
			if errors.As(err, &te) {
				log.Printf("frame %d: %s transaction failed at offset %d", i, te.Op, te.Offset)
			}
			return err
		}
		time.Sleep(interval)
	}
	return nil
}

func mainImpl() error {
	bus := flag.String("bus", "", "I²C bus to use")
	addr := flag.Int("addr", 0x3C, "I²C device address")
	w := flag.Int("w", 128, "display width")
	h := flag.Int("h", 32, "display height")
	chunk := flag.Int("chunk", ssd1306.DefaultOpts.MaxChunk, "maximum bytes per bus transaction")
	freq := ssd1306.DefaultOpts.Frequency
	flag.Var(&freq, "freq", "I²C bus speed; 0Hz keeps the bus default")
	term := flag.Bool("term", false, "render in the terminal instead of the panel")
	logoPath := flag.String("logo", "", "PNG to use as splash screen")
	fontPath := flag.String("font", "", "TTF for the title line; Go Regular when empty")
	size := flag.Float64("size", 7, "font size for the title line")
	n := flag.Int("n", 20, "number of status frames")
	interval := flag.Duration("interval", 250*time.Millisecond, "delay between frames")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if err := checkAddr(*addr); err != nil {
		return err
	}

	opts := statuspanel.DefaultOpts
	opts.W = *w
	opts.H = *h
	opts.Addr = uint16(*addr)
	opts.MaxChunk = *chunk
	opts.Frequency = freq
	if *term {
		opts.Frequency = 0
	}
	if *logoPath != "" {
		l, err := logo.LoadPNG(*logoPath, *w, *h)
		if err != nil {
			return err
		}
		opts.Logo = l
	}
	face, err := loadFace(*fontPath, *size)
	if err != nil {
		return err
	}

	b, err := openBus(*bus, *term, *w, *h)
	if err != nil {
		return err
	}
	defer b.Close()
	d, err := statuspanel.NewI2C(b, &opts)
	if err != nil {
		return err
	}
	log.Printf("using %s", d)
	if err := d.ShowSplashScreen(); err != nil {
		return err
	}
	time.Sleep(time.Second)
	if err := run(d, face, *n, *interval); err != nil {
		return err
	}
	return d.Halt()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "statuspanel: %s.\n", err)
		os.Exit(1)
	}
}
