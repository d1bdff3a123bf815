// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "fmt"

// TransportError is returned when a bus transaction fails.
//
// The transfer is aborted at the failing transaction; the display RAM may hold
// a partially written frame.
type TransportError struct {
	// Op is either "command" or "data".
	Op string
	// Offset is the index of the first byte of the failed transaction within
	// the command or frame being sent.
	Offset int
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ssd1306: %s transaction at offset %d failed: %v", e.Op, e.Offset, e.Err)
}

// Unwrap returns the bus error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
