// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 transfers a 1 bit frame buffer to a monochrome OLED display
// driven by a SSD1306 controller.
//
// The controller is configured once, when the Dev is created, in horizontal
// addressing mode over the full column and page range. Every Flush then sends
// the same addressing window command followed by the whole frame buffer as a
// stream of data transactions. The controller wraps to the next page on its
// own, so transactions are cut at a fixed maximum size regardless of page
// boundaries.
//
// I²C adapters often cap the size of a single transfer (32 bytes on many
// microcontroller I²C stacks), see Opts.MaxChunk.
//
// The device can be driven on either I²C or SPI with 4 wires. Changing
// between protocol is likely done through resistor soldering, for boards that
// support both.
//
// # Partial updates
//
// When a transaction fails, Flush returns a *TransportError and stops. The
// panel then shows a mix of the previous and the new frame until the next
// successful Flush. Retrying is left to the caller.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// "DM-OLED096-624": https://drive.google.com/file/d/0B5lkVYnewKTGaEVENlYwbDkxSGM/view
package ssd1306
