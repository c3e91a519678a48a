// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("qr: invalid input")
	ErrCapacity     = errors.New("qr: data too long")
	ErrEmpty        = &InputError{Offset: -1}
)

// An InputError reports text that cannot be encoded: either empty
// text, or a byte at Offset not valid in Mode.
type InputError struct {
	Mode   Mode // mode the text was checked against
	Offset int  // offset of the offending byte, -1 for empty text
	Byte   byte // offending byte
}

func (e *InputError) Error() string {
	if e.Offset < 0 {
		return "qr: empty text"
	}
	return fmt.Sprintf("qr: byte %#02x at offset %d invalid in %s mode",
		e.Byte, e.Offset, e.Mode)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// A CapacityError reports data too long for any version at Level.
type CapacityError struct {
	Bits  int   // data bits required at the largest size class
	Max   int   // data bits available in version 40
	Level Level // requested level
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d bits of data exceed capacity "+
		"of %d bits at level %s", e.Bits, e.Max, e.Level)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

// An InternalError is the panic value for violated invariants of the
// encoder: inconsistent tables or a bug, never bad input.
type InternalError string

func (e InternalError) Error() string {
	return "qr: internal error: " + string(e)
}
