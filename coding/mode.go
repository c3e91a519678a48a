// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = iota // decimal digits
	Alphanumeric             // digits, upper case letters, " $%*+-./:"
	Byte                     // any bytes
	Kanji                    // Shift JIS double byte characters
	NumModes                 // number of modes
)

var modeNames = [NumModes]string{"numeric", "alphanumeric", "byte", "kanji"}

func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// IsValid reports whether m is one of the four encoding modes.
func (m Mode) IsValid() bool {
	return Numeric <= m && m < NumModes
}

// Indicator returns the 4-bit mode indicator written before a segment.
func (m Mode) Indicator() uint32 {
	return 1 << m
}

// countBits holds the width of the character count field per mode
// and size class.
var countBits = [NumModes][NumClasses]int{
	{10, 12, 14},
	{9, 11, 13},
	{8, 16, 16},
	{8, 10, 12},
}

// CountBits returns the width of the character count field of a
// segment encoded in mode m at QR version size class class.
func (m Mode) CountBits(class int) int {
	return countBits[m][class]
}

// MaxCount returns the maximum number of characters of a single
// segment encoded in mode m at size class class.
func (m Mode) MaxCount(class int) int {
	return 1<<countBits[m][class] - 1
}

// PayloadBits returns the encoded length in bits of n characters in
// mode m, excluding the segment header.  For Kanji a character is a
// byte pair.
func (m Mode) PayloadBits(n int) int {
	switch m {
	case Numeric:
		return (10*n + 2) / 3
	case Alphanumeric:
		return (11*n + 1) / 2
	case Byte:
		return 8 * n
	case Kanji:
		return 13 * n
	}
	panic(InternalError("invalid mode " + m.String()))
}

// Bits returns the encoded length in bits of a segment of n characters
// in mode m at size class class, including the header.
func (m Mode) Bits(n, class int) int {
	return 4 + m.CountBits(class) + m.PayloadBits(n)
}

// alpha maps bytes up to 'Z' to their alphanumeric values plus 1.
var alpha = ['Z' + 1]byte{
	' ': 37, '$': 38, '%': 39, '*': 40, '+': 41, '-': 42, '.': 43,
	'/': 44, ':': 45,
	'0': 1, '1': 2, '2': 3, '3': 4, '4': 5,
	'5': 6, '6': 7, '7': 8, '8': 9, '9': 10,
	'A': 11, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16, 'G': 17,
	'H': 18, 'I': 19, 'J': 20, 'K': 21, 'L': 22, 'M': 23, 'N': 24,
	'O': 25, 'P': 26, 'Q': 27, 'R': 28, 'S': 29, 'T': 30, 'U': 31,
	'V': 32, 'W': 33, 'X': 34, 'Y': 35, 'Z': 36,
}

// IsDigit reports whether c is encodable in numeric mode.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlnum reports whether c is encodable in alphanumeric mode.
func IsAlnum(c byte) bool {
	return int(c) < len(alpha) && alpha[c] != 0
}

// alnumValue returns the alphanumeric value of c.
func alnumValue(c byte) uint32 {
	return uint32(alpha[c]) - 1
}

// IsKanji reports whether the byte pair hi, lo is a Shift JIS double
// byte character encodable in kanji mode.
func IsKanji(hi, lo byte) bool {
	if lo < 0x40 || lo == 0x7f || lo > 0xfc {
		return false
	}
	w := uint16(hi)<<8 | uint16(lo)
	return 0x8140 <= w && w <= 0x9ffc || 0xe040 <= w && w <= 0xebbf
}

// Accepts reports whether the byte at s[i] starts a character
// encodable in mode m, and returns the length of the character.
func (m Mode) Accepts(s string, i int) (int, bool) {
	switch m {
	case Numeric:
		return 1, IsDigit(s[i])
	case Alphanumeric:
		return 1, IsAlnum(s[i])
	case Byte:
		return 1, true
	case Kanji:
		return 2, i+1 < len(s) && IsKanji(s[i], s[i+1])
	}
	return 0, false
}

// Count returns the number of characters in s encoded in mode m.
func (m Mode) Count(s string) int {
	if m == Kanji {
		return len(s) / 2
	}
	return len(s)
}
