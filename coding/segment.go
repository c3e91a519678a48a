// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Segment describes a QR code segment.
type Segment struct {
	Mode Mode   // encoding mode
	Text string // data to encode; Shift JIS byte pairs for Kanji
}

func (seg Segment) String() string {
	return fmt.Sprintf("%s(%q)", seg.Mode, seg.Text)
}

// Validate returns an *InputError if seg.Text is empty or contains a
// byte not encodable in seg.Mode.
func (seg Segment) Validate() error {
	return Validate(seg.Text, seg.Mode)
}

// Validate returns an *InputError if s is empty or contains a byte
// not encodable in mode m.
func Validate(s string, m Mode) error {
	if s == "" {
		return ErrEmpty
	}
	for i := 0; i < len(s); {
		n, ok := m.Accepts(s, i)
		if !ok {
			return &InputError{Mode: m, Offset: i, Byte: s[i]}
		}
		i += n
	}
	return nil
}

// Count returns the number of characters in seg.
func (seg Segment) Count() int {
	return seg.Mode.Count(seg.Text)
}

// Chunks splits seg into segments whose character counts fit the
// count field at size class class.
func (seg Segment) Chunks(class int) []Segment {
	max := seg.Mode.MaxCount(class)
	if seg.Count() <= max {
		return []Segment{seg}
	}
	if seg.Mode == Kanji {
		max *= 2
	}
	var c []Segment
	for s := seg.Text; s != ""; {
		n := min(max, len(s))
		c = append(c, Segment{seg.Mode, s[:n]})
		s = s[n:]
	}
	return c
}

// EncodedLength returns the encoded length in bits of seg at size
// class class, counting a header for each chunk.
func (seg Segment) EncodedLength(class int) int {
	max := seg.Mode.MaxCount(class)
	n := seg.Count()
	bits := 0
	for ; n > max; n -= max {
		bits += seg.Mode.Bits(max, class)
	}
	return bits + seg.Mode.Bits(n, class)
}

// Encode writes seg encoded for the given QR version size class to b.
// The segment must fit a single count field and hold valid data.
func (seg Segment) Encode(b *Bits, class int) {
	m := seg.Mode
	s := seg.Text
	n := seg.Count()
	if n > m.MaxCount(class) {
		panic(InternalError("segment too long for count field"))
	}
	b.Write(m.Indicator(), 4)
	b.Write(uint32(n), m.CountBits(class))
	switch m {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+
				uint32(s[2]-'0'), 10)
		}
		switch len(s) {
		case 2:
			b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		case 1:
			b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(alnumValue(s[0])*45+alnumValue(s[1]), 11)
		}
		if len(s) == 1 {
			b.Write(alnumValue(s[0]), 6)
		}
	case Byte:
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	case Kanji:
		for ; len(s) >= 2; s = s[2:] {
			w := uint32(s[0])<<8 | uint32(s[1])
			if w <= 0x9ffc {
				w -= 0x8140
			} else {
				w -= 0xc140
			}
			b.Write((w>>8)*0xc0+w&0xff, 13)
		}
	default:
		panic(InternalError("invalid mode " + m.String()))
	}
}
