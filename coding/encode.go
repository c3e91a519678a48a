// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: version
// tables, segment encoding, Reed-Solomon blocks, function patterns,
// module placement and masking.
package coding // import "github.com/unixdj/qrencode/coding"

// A Code is a square pixel grid.
type Code struct {
	Bitmap  []byte  // 1 is black, 0 is white
	Size    int     // number of pixels on a side
	Stride  int     // number of bytes per row
	Version Version // QR version
	Level   Level   // error correction level
	Mask    int     // mask pattern
	Penalty int     // penalty score of the chosen mask
}

// Black reports whether the pixel at (x, y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Options controls mask selection.
type Options struct {
	Mask    MaskPolicy // mask patterns to evaluate
	Workers int        // concurrent mask evaluations, 0 or 1 serial
}

// Encode encodes segs at level l in the smallest version that holds
// them.
func Encode(segs []Segment, l Level, opt Options) (*Code, error) {
	data, v, err := BuildBitstream(segs, l)
	if err != nil {
		return nil, err
	}
	return EncodeVersion(data, v, l, opt), nil
}

// EncodeVersion builds a code of version v at level l from padded data
// codewords.
func EncodeVersion(data []byte, v Version, l Level, opt Options) *Code {
	words := Interleave(SplitBlocks(data, v, l))
	if len(words) != v.Words() {
		panic(InternalError("codeword count mismatch"))
	}
	placed := Place(Frame(v), words, v.Remainder())
	sel := SelectMask(placed, l, opt.Mask, opt.Workers)
	c := Pack(sel.Matrix)
	c.Version = v
	c.Level = l
	c.Mask = sel.Mask
	c.Penalty = sel.Penalty
	return c
}

// Pack returns a Code with the colours of the cells of m.
func Pack(m *Matrix) *Code {
	siz := m.Size
	stride := (siz + 7) / 8
	bitmap := make([]byte, stride*siz)
	for y := 0; y < siz; y++ {
		row := bitmap[y*stride:]
		for x := 0; x < siz; x++ {
			if m.Dark(x, y) {
				row[x/8] |= 1 << uint(7&^x)
			}
		}
	}
	return &Code{Bitmap: bitmap, Size: siz, Stride: stride}
}
