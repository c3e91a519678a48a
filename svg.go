// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// EncodeSVG writes an SVG image displaying the code to w.  Dark
// pixels are drawn as a single path of horizontal runs over a
// background rectangle, in user units of one QR pixel.
func (c *Code) EncodeSVG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	pal := c.colors()
	n := c.Size + c.Border*2
	pix := c.width()
	fmt.Fprintf(b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="%d" height="%d"%s/>
<path%s d="`, pix, pix, n, n, n, n, svgFill(pal[0]), svgFill(pal[1]))
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; {
			if !c.Black(x, y) {
				x++
				continue
			}
			run := 1
			for c.Black(x+run, y) {
				run++
			}
			fmt.Fprintf(b, "M%d,%dh%dv1h-%dz", x+c.Border, y+c.Border, run, run)
			x += run
		}
	}
	b.WriteString("\"/>\n</svg>\n")
	return b.Flush()
}

// svgFill returns the fill attributes for v.
func svgFill(v color.Color) string {
	r, g, b, a := v.RGBA()
	if a == 0 {
		return ` fill="none"`
	}
	// Colours are alpha-premultiplied.
	s := fmt.Sprintf(` fill="#%02x%02x%02x"`,
		r*0xffff/a>>8, g*0xffff/a>>8, b*0xffff/a>>8)
	if a != 0xffff {
		s += ` fill-opacity="` + strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64) + `"`
	}
	return s
}
