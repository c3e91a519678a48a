// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"strings"
)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool {
	return L <= l && l <= H
}

// ParseLevel parses a level name, one of "L", "M", "Q" and "H",
// ignoring case.
func ParseLevel(s string) (Level, bool) {
	if len(s) == 1 {
		if i := strings.IndexByte("lmqhLMQH", s[0]); i >= 0 {
			return Level(i & 3), true
		}
	}
	return 0, false
}

// calcFormat returns fb with BCH(15,5) check bits appended.
func calcFormat(fb uint16) uint16 {
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&(1<<(i+10)) != 0 {
			rem ^= 0x537 << i
		}
	}
	return fb | rem
}

// ftab holds the masked 15-bit format information per level and mask.
var ftab = func() (t [4][8]uint16) {
	for l := range t {
		for m := range t[l] {
			fb := uint16(l^1)<<13 | uint16(m)<<10
			t[l][m] = calcFormat(fb) ^ 0x5412
		}
	}
	return
}()

// FormatBits returns the 15-bit format information for level l and
// mask pattern mask, masked with 101010000010010.
func FormatBits(l Level, mask int) uint16 {
	return ftab[l][mask]
}
