// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits strings into QR code segments.

The segment header widths depend on the QR version size class, so
strings are split for a given size class.  Two strategies are
available.  Heuristic scans the string left to right, extending a
segment over characters of another mode as long as switching modes
would not save bits.  Optimal chooses the cheapest chain of segments
over spans of characters encodable in the same modes.

Kanji mode segments hold Shift JIS double byte characters and are only
used when enabled.
*/
package split // import "github.com/unixdj/qrencode/split"

import (
	"github.com/unixdj/qrencode/coding"
)

// A Strategy is a segmentation algorithm.
type Strategy int

const (
	Heuristic Strategy = iota // greedy scan with cost comparison
	Optimal                   // cheapest chain over spans
)

func (s Strategy) String() string {
	switch s {
	case Heuristic:
		return "heuristic"
	case Optimal:
		return "optimal"
	}
	return "invalid"
}

// IsValid reports whether s is Heuristic or Optimal.
func (s Strategy) IsValid() bool {
	return s == Heuristic || s == Optimal
}

// Options controls splitting.
type Options struct {
	Kanji    bool     // recognise Shift JIS kanji
	Strategy Strategy // segmentation algorithm
}

// Split splits text into segments for the given QR version size class.
// Concatenating the segments' text yields text.  Split returns nil
// for empty text.
func Split(text string, class int, o Options) []coding.Segment {
	if text == "" {
		return nil
	}
	if o.Strategy == Optimal {
		return chain(text, split(classify(text, o.Kanji), class))
	}
	return heuristic{
		text:  text,
		kanji: o.Kanji,
		ln:    coding.Numeric.CountBits(class),
		la:    coding.Alphanumeric.CountBits(class),
	}.split()
}

// Force returns text as a single segment in mode m, or an
// *coding.InputError if text is empty or not encodable in m.
func Force(text string, m coding.Mode) ([]coding.Segment, error) {
	if err := coding.Validate(text, m); err != nil {
		return nil, err
	}
	return []coding.Segment{{Mode: m, Text: text}}, nil
}

// Upper converts the ASCII letters of text to upper case, leaving
// Shift JIS kanji alone if kanji is set.
func Upper(text string, kanji bool) string {
	var b []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if kanji && i+1 < len(text) && coding.IsKanji(c, text[i+1]) {
			i++
			continue
		}
		if 'a' <= c && c <= 'z' {
			if b == nil {
				b = []byte(text)
			}
			b[i] = c - 'a' + 'A'
		}
	}
	if b == nil {
		return text
	}
	return string(b)
}

// merge appends seg to segs, joining it with the last segment if
// their modes match.
func merge(segs []coding.Segment, seg coding.Segment) []coding.Segment {
	if n := len(segs) - 1; n >= 0 && segs[n].Mode == seg.Mode {
		segs[n].Text += seg.Text
		return segs
	}
	return append(segs, seg)
}
