// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"errors"
	"fmt"

	"github.com/unixdj/qrencode/coding"
)

// Errors returned by Encode, matched with errors.Is.  Each has a
// corresponding error type carrying details.
var (
	ErrInvalidInput = coding.ErrInvalidInput // *InvalidInputError
	ErrCapacity     = coding.ErrCapacity     // *CapacityError
	ErrConfig       = errors.New("qr: invalid configuration")

	// ErrEmpty is the *InvalidInputError for empty text.
	ErrEmpty = coding.ErrEmpty
)

// Errors returned by renderers.
var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

type (
	// An InvalidInputError reports empty text or a byte not
	// encodable in the forced mode.
	InvalidInputError = coding.InputError

	// A CapacityError reports text too long for version 40 at the
	// requested level.
	CapacityError = coding.CapacityError

	// An InternalError is the value Encode panics with when an
	// invariant of the encoder is violated.  It indicates a bug,
	// and is never returned as an error.
	InternalError = coding.InternalError
)

// A ConfigError reports an invalid Config field.
type ConfigError struct {
	Field string // name of the field
	Value any    // invalid value
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("qr: invalid %s %v", e.Field, e.Value)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
