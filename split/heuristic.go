// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import "github.com/unixdj/qrencode/coding"

// end is returned by identify past the end of the string.
const end = coding.NumModes

// heuristic splits a string scanning left to right.  Each eat method
// consumes a segment starting at offset s and returns its mode and
// length.  Cost comparisons leave out header bits that cancel out.
type heuristic struct {
	text   string
	kanji  bool
	ln, la int // numeric and alphanumeric count field widths
}

func bitsNum(n int) int   { return coding.Numeric.PayloadBits(n) }
func bitsAlpha(n int) int { return coding.Alphanumeric.PayloadBits(n) }
func bitsByte(n int) int  { return coding.Byte.PayloadBits(n) }

func (h heuristic) split() []coding.Segment {
	var segs []coding.Segment
	for s := 0; s < len(h.text); {
		var m coding.Mode
		var n int
		switch h.identify(s) {
		case coding.Numeric:
			m, n = h.eatNum(s)
		case coding.Alphanumeric:
			m, n = h.eatAlpha(s)
		case coding.Kanji:
			m, n = h.eatKanji(s)
		default:
			m, n = h.eatByte(s)
		}
		if n <= 0 {
			panic(coding.InternalError("segmenter made no progress"))
		}
		segs = merge(segs, coding.Segment{Mode: m, Text: h.text[s : s+n]})
		s += n
	}
	return segs
}

// identify returns the cheapest mode for the character at offset i.
func (h heuristic) identify(i int) coding.Mode {
	if i >= len(h.text) {
		return end
	}
	c := h.text[i]
	switch {
	case coding.IsDigit(c):
		return coding.Numeric
	case coding.IsAlnum(c):
		return coding.Alphanumeric
	case h.kanji && i+1 < len(h.text) && coding.IsKanji(c, h.text[i+1]):
		return coding.Kanji
	}
	return coding.Byte
}

// digits returns the end of the run of digits starting at i.
func (h heuristic) digits(i int) int {
	for i < len(h.text) && coding.IsDigit(h.text[i]) {
		i++
	}
	return i
}

// alnums returns the end of the run of alphanumerics starting at i.
func (h heuristic) alnums(i int) int {
	for i < len(h.text) && coding.IsAlnum(h.text[i]) {
		i++
	}
	return i
}

// eatNum consumes a numeric segment, unless the digits are cheaper
// as part of a following byte or alphanumeric segment.
func (h heuristic) eatNum(s int) (coding.Mode, int) {
	p := h.digits(s)
	run := p - s
	switch h.identify(p) {
	case coding.Byte:
		if bitsNum(run)+4+h.ln+bitsByte(1)-bitsByte(run+1) > 0 {
			return h.eatByte(s)
		}
	case coding.Alphanumeric:
		if bitsNum(run)+4+h.ln+bitsAlpha(1)-bitsAlpha(run+1) > 0 {
			return h.eatAlpha(s)
		}
	}
	return coding.Numeric, run
}

// eatAlpha consumes an alphanumeric segment, stopping before digit
// runs long enough to pay for a numeric segment, unless it is cheaper
// as part of a following byte segment.
func (h heuristic) eatAlpha(s int) (coding.Mode, int) {
	p := s
	for p < len(h.text) && coding.IsAlnum(h.text[p]) {
		if !coding.IsDigit(h.text[p]) {
			p++
			continue
		}
		q := h.digits(p)
		if bitsAlpha(p-s)+bitsNum(q-p)+4+h.ln-bitsAlpha(q-s) < 0 {
			break
		}
		p = q
	}
	run := p - s
	if p < len(h.text) && !coding.IsAlnum(h.text[p]) &&
		bitsAlpha(run)+4+h.la+bitsByte(1)-bitsByte(run+1) > 0 {
		return h.eatByte(s)
	}
	return coding.Alphanumeric, run
}

// eatKanji consumes a kanji segment.
func (h heuristic) eatKanji(s int) (coding.Mode, int) {
	p := s
	for h.identify(p) == coding.Kanji {
		p += 2
	}
	return coding.Kanji, p - s
}

// eatByte consumes a byte segment of at least one byte, stopping
// before kanji and before numeric or alphanumeric runs long enough to
// pay for their own segment.
func (h heuristic) eatByte(s int) (coding.Mode, int) {
	p := s + 1
loop:
	for p < len(h.text) {
		switch h.identify(p) {
		case coding.Kanji:
			break loop
		case coding.Numeric:
			q := h.digits(p)
			if bitsByte(p-s)+bitsNum(q-p)+4+h.ln-bitsByte(q-s) < 0 {
				break loop
			}
			p = q
		case coding.Alphanumeric:
			q := h.alnums(p)
			if bitsByte(p-s)+bitsAlpha(q-p)+4+h.la-bitsByte(q-s) < 0 {
				break loop
			}
			p = q
		default:
			p++
		}
	}
	return coding.Byte, p - s
}
