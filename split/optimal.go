// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import "github.com/unixdj/qrencode/coding"

// Segment modes in order of preference.
const (
	numMode    = iota // numeric
	alphaMode         // alphanumeric
	kanjiMode         // kanji
	byteMode          // byte
	modes             // total number of modes

	numModes   = 1<<numMode | 1<<alphaMode | 1<<byteMode
	alphaModes = 1<<alphaMode | 1<<byteMode
	kanjiModes = 1<<byteMode | 1<<kanjiMode
	byteModes  = 1 << byteMode
)

var codingMode = [modes]coding.Mode{
	coding.Numeric, coding.Alphanumeric, coding.Kanji, coding.Byte,
}

// bits returns segment size in bits for a string of n bytes, k kanji
// at QR version size class class encoded in mode m.
func bits(m byte, n, k, class int) int {
	if m == kanjiMode {
		return coding.Kanji.Bits(k, class)
	}
	return codingMode[m].Bits(n, class)
}

type (
	// segment describes a segment encoded in a certain mode.
	segment struct {
		next   *segment // link to next segment in the chain
		start  int      // start of string
		slen   int      // length of string in bytes
		klen   int      // length of string in kanji
		weight int      // encoded size of all segments in the chain
		mode   byte     // encoding mode
	}

	// span describes a span of bytes encodable in the same modes.
	span struct {
		start int            // start of string
		slen  int            // length of string in bytes
		klen  int            // length of string in kanji
		modes byte           // bit field of valid encoding modes
		seg   [modes]segment // segments
	}
)

// classify splits text into spans of bytes encodable in the same
// modes.  Kanji are recognised if kanji is set.
func classify(text string, kanji bool) []span {
	if text == "" {
		return nil
	}

	// Scan the string, detect valid encoding modes for each byte.
	// The second byte of a kanji gets no modes of its own.
	modes := make([]byte, len(text))
	common := ^byte(0) // bit field of modes common to all spans
	n := 0
	m := byte(0)
	for i := 0; i < len(text); i++ {
		old := m
		c := text[i]
		switch {
		case coding.IsDigit(c):
			m = numModes
		case coding.IsAlnum(c):
			m = alphaModes
		case kanji && i+1 < len(text) && coding.IsKanji(c, text[i+1]):
			m = kanjiModes
		default:
			m = byteModes
		}
		modes[i] = m
		if m == kanjiModes {
			i++
		}
		if m != old {
			common &= m
			n++
		}
	}

	mask := ^common | -common // Mask common modes except the lowest

	// Set spans
	sp := make([]span, n)
	old, n := byte(0), 0
	for i, v := range modes {
		if v != 0 && v != old {
			if i != 0 {
				sp[n].slen = i - sp[n].start
				n++
			}
			sp[n].start = i
			sp[n].modes = v & mask
			old = v
		}
		if v == kanjiModes {
			sp[n].klen++
		}
	}
	sp[n].slen = len(modes) - sp[n].start
	return sp
}

/*
split returns the optimal split for the string described by sp at
the given QR version size class.

For last span, for each valid mode j:
  - Create a segment sp[len(sp)-1].seg[j] describing the span
    encoded in mode j.  Calculate the weight (encoded length in
    bits).

Then walk backwards through the rest of the spans.
For each span i, for each valid mode j:
  - For each mode k valid for span i+1, create a segment linking
    to next=sp[i+1].seg[k].  If k==j, merge the segments by
    adding the length of next and linking to next.next instead.
    Calculate the weight of the segment.  If next is not nil, add
    the weight of next to get the combined weight of the chain.
  - From those segments choose the one with the smallest weight.
    Assign it to sp[i].seg[j].

Return the address of the segment in sp[0].seg with the smallest
weight.
*/
func split(sp []span, class int) *segment {
	const Inf = 1 << 30
	// Process last span.  Create a segment for each valid mode.
	i := len(sp) - 1
	if i < 0 {
		return nil
	}
	for j := byte(0); j < modes; j++ {
		seg := &sp[i].seg[j]
		*seg = segment{weight: Inf}
		if sp[i].modes>>j&1 != 0 {
			*seg = segment{
				start:  sp[i].start,
				slen:   sp[i].slen,
				klen:   sp[i].klen,
				weight: bits(j, sp[i].slen, sp[i].klen, class),
				mode:   j,
			}
		}
	}

	// Process the rest of the spans.
	for i--; i >= 0; i-- {
		v := &sp[i]
		for j := byte(0); j < modes; j++ {
			seg := &v.seg[j]
			*seg = segment{weight: Inf}
			if v.modes>>j&1 == 0 {
				continue
			}
			weight := bits(j, v.slen, v.klen, class)
			ns := &sp[i+1].seg
			for k := byte(0); k < modes; k++ {
				next := &ns[k]
				if next.weight == Inf {
					continue
				}
				c := segment{
					next:   next,
					start:  v.start,
					slen:   v.slen,
					klen:   v.klen,
					weight: weight,
					mode:   j,
				}
				if k == j {
					c.slen += next.slen
					c.klen += next.klen
					c.next = next.next
					c.weight = bits(j, c.slen, c.klen, class)
				}
				if c.next != nil {
					c.weight += c.next.weight
				}
				if c.weight < seg.weight {
					*seg = c
				}
			}
		}
	}

	// Choose the first segment with the smallest weight
	seg := &sp[0].seg[0]
	for j := 1; j < modes; j++ {
		if sp[0].seg[j].weight < seg.weight {
			seg = &sp[0].seg[j]
		}
	}
	return seg
}

// chain converts a chain of segments over text to coding segments.
func chain(text string, seg *segment) []coding.Segment {
	var segs []coding.Segment
	for ; seg != nil; seg = seg.next {
		segs = append(segs, coding.Segment{
			Mode: codingMode[seg.mode],
			Text: text[seg.start : seg.start+seg.slen],
		})
	}
	return segs
}
