// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"io"
	"testing"

	"github.com/pideck/panel/screen2d"
	"github.com/pideck/panel/statuspanel"
)

func TestCheckAddr(t *testing.T) {
	for _, a := range []int{0, 0x3C, 0x3D, 0x7F} {
		if err := checkAddr(a); err != nil {
			t.Errorf("%#x: %v", a, err)
		}
	}
	for _, a := range []int{-1, 0x80, 0x13C, 0x1003C} {
		if err := checkAddr(a); err == nil {
			t.Errorf("%#x: expected error", a)
		}
	}
}

func TestRun(t *testing.T) {
	bus := screen2d.New(&screen2d.Opts{W: 128, H: 32, Out: io.Discard})
	opts := statuspanel.DefaultOpts
	d, err := statuspanel.NewI2C(bus, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(d, nil, 2, 0); err != nil {
		t.Fatal(err)
	}
	if n := bus.Frames(); n != 3 {
		t.Fatalf("%d frames", n)
	}
}
