// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/unixdj/qrencode/coding"
)

// A Version is a QR version from 1 to 40.
type Version = coding.Version

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap  []byte  // 1 is black, 0 is white
	Size    int     // number of pixels on a side
	Stride  int     // number of bytes per row
	Version Version // QR version
	Level   Level   // error correction level
	Mask    int     // mask pattern
	Penalty int     // penalty score of the mask

	Scale   int             // number of image pixels per QR pixel
	Border  int             // number of QR pixels of quiet zone
	Palette *[2]color.Color // background and foreground, nil for white and black
	Reverse bool            // swap background and foreground
}

// Black reports whether the pixel at (x, y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Rows returns a copy of the modules, one byte per module, 1 for
// dark and 0 for light.
func (c *Code) Rows() [][]byte {
	rows := make([][]byte, c.Size)
	for y := range rows {
		rows[y] = make([]byte, c.Size)
		for x := range rows[y] {
			if c.Black(x, y) {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Stride*c.Size &&
		c.Scale > 0 && c.Border >= 0
}

// width returns the number of image pixels on a side.
func (c *Code) width() int {
	return c.Scale * (c.Size + c.Border*2)
}

// colors returns the light and dark colours.
func (c *Code) colors() color.Palette {
	p := color.Palette{color.Gray{0xff}, color.Gray{0x00}}
	if c.Palette != nil {
		p[0], p[1] = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		p[0], p[1] = p[1], p[0]
	}
	return p
}

// scanline fills row with image pixel row y packed eight pixels per
// byte, most significant bit first.  Bits of dark pixels are set,
// unless invert is set.
func (c *Code) scanline(row []byte, y int, invert bool) {
	clear(row)
	my := y/c.Scale - c.Border
	for x, pix := 0, c.width(); x < pix; x++ {
		if c.Black(x/c.Scale-c.Border, my) != invert {
			row[x/8] |= 0x80 >> uint(x&7)
		}
	}
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.colors()}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.width()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x >= 0 && y >= 0 && c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return c.pal[1]
	}
	return c.pal[0]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}

// Half block characters indexed by top<<1 | bottom.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String returns the code drawn with Unicode half blocks, two rows of
// pixels per line, dark pixels drawn as blocks.  If c.Reverse is set,
// light pixels are drawn as blocks, for dark terminals.
func (c *Code) String() string {
	var b strings.Builder
	c.text(&b, func(top, bottom bool) string {
		var i int
		if top != c.Reverse {
			i |= 2
		}
		if bottom != c.Reverse {
			i |= 1
		}
		return halfBlocks[i]
	}, 2)
	return b.String()
}

// EncodeASCII writes the code to w drawn with "##" for dark pixels and
// spaces for light ones, swapped if c.Reverse is set.
func (c *Code) EncodeASCII(w io.Writer) error {
	if c == nil || c.Size <= 0 || c.Border < 0 {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	c.text(b, func(dark, _ bool) string {
		if dark != c.Reverse {
			return "##"
		}
		return "  "
	}, 1)
	return b.Flush()
}

// text draws the code with the quiet zone, step rows of pixels per
// line, calling cell for each column.
func (c *Code) text(w io.StringWriter, cell func(a, b bool) string, step int) {
	bord := max(c.Border, 0)
	for y := -bord; y < c.Size+bord; y += step {
		for x := -bord; x < c.Size+bord; x++ {
			w.WriteString(cell(c.Black(x, y), step > 1 && c.Black(x, y+1)))
		}
		w.WriteString("\n")
	}
}
