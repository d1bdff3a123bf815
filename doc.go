// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package panel is a container for the status panel display stack.
//
// The frame buffer is periph's image1bit.VerticalLSB. glyph and shape draw
// into it, ssd1306 transfers it to the controller and statuspanel ties them
// together.
// screen2d emulates the controller in a terminal.
package panel
