// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package logo

// defaultPix is the 128x32 splash screen in image1bit.VerticalLSB layout.
var defaultPix = [Width * Height / 8]byte{
	// Page 0.
	0xFC, 0x02, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0xF9, 0xF9, 0x19, 0x19, 0x19, 0x19, 0x19, 0x19, 0xE1,
	0xE1, 0x01, 0x01, 0x01, 0x01, 0x19, 0x19, 0xF9, 0xF9, 0x19, 0x19, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0xF9, 0xF9, 0x19, 0x19, 0x19,
	0x19, 0x61, 0x61, 0x81, 0x81, 0x01, 0x01, 0xF9, 0xF9, 0x19, 0x19, 0x19, 0x19, 0x19, 0x19, 0x19,
	0x19, 0x01, 0x01, 0xE1, 0xE1, 0x19, 0x19, 0x19, 0x19, 0x19, 0x19, 0x61, 0x61, 0x01, 0x01, 0xF9,
	0xF9, 0x01, 0x01, 0x81, 0x81, 0x61, 0x61, 0x19, 0x19, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x02, 0xFC,
	// Page 1.
	0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x06, 0x06, 0x06, 0x06, 0x06, 0x06, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x80, 0x80, 0xFF, 0xFF, 0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x80, 0x80, 0x80,
	0x80, 0x60, 0x60, 0x1F, 0x1F, 0x00, 0x00, 0xFF, 0xFF, 0x86, 0x86, 0x86, 0x86, 0x86, 0x86, 0x80,
	0x80, 0x00, 0x00, 0x7F, 0x7F, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x60, 0x60, 0x00, 0x00, 0xFF,
	0xFF, 0x06, 0x06, 0x19, 0x19, 0x60, 0x60, 0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF,
	// Page 2.
	0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x10, 0xD0, 0xD0, 0xD0, 0xD0, 0x10, 0xF0,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00, 0x81, 0xA1, 0x01, 0x01, 0x01,
	0x01, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00, 0x81, 0x81, 0x81, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xF0, 0x10, 0xD0, 0xD0, 0xD0, 0xD0, 0x10, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF,
	// Page 3.
	0x3F, 0x40, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x8F, 0x88, 0x8B, 0x8B, 0x8B, 0x8B, 0x88, 0x8F,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x9F, 0x84, 0x84, 0x84, 0x83, 0x80, 0x80, 0x88, 0x8F, 0x88, 0x80, 0x80,
	0x87, 0x88, 0x88, 0x88, 0x84, 0x80, 0x87, 0x88, 0x88, 0x88, 0x87, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x8F, 0x88, 0x8B, 0x8B, 0x8B, 0x8B, 0x88, 0x8F, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x40, 0x3F,
}
