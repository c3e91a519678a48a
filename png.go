// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image/color"
	"io"

	"github.com/klauspost/compress/zlib"
)

// PNG returns a PNG image displaying the code, or nil if the code is
// invalid or the image would be too large.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// DataURI returns the PNG image as a base64 data URI, for embedding
// in HTML.
func (c *Code) DataURI() (string, error) {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return "", err
	}
	return "data:image/png;base64," +
		base64.StdEncoding.EncodeToString(b.Bytes()), nil
}

// EncodePNG writes a PNG image displaying the code to w.  The image is
// 1-bit grayscale, or 1-bit paletted if c.Palette is set.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	pix := c.width()
	if pix > 32767*8 {
		return ErrLargeImage // limit is under 64 gigapixels
	}
	var pw pngWriter
	pal, gray := c.palette()
	usePal := !gray

	// Header
	pw.buf.WriteString(pngHeader)

	// Header block
	binary.BigEndian.PutUint32(pw.tmp[0:4], uint32(pix))
	binary.BigEndian.PutUint32(pw.tmp[4:8], uint32(pix))
	pw.tmp[8] = 1 // 1-bit
	if usePal {
		pw.tmp[9] = 3 // palette
	} else {
		pw.tmp[9] = 0 // gray
	}
	pw.tmp[10] = 0 // deflate
	pw.tmp[11] = 0 // adaptive filtering
	pw.tmp[12] = 0 // no interlace
	pw.writeChunk("IHDR", pw.tmp[:13])

	// Palette and transparency
	if usePal {
		pw.tmp[0] = pal[0].R
		pw.tmp[1] = pal[0].G
		pw.tmp[2] = pal[0].B
		pw.tmp[3] = pal[1].R
		pw.tmp[4] = pal[1].G
		pw.tmp[5] = pal[1].B
		pw.writeChunk("PLTE", pw.tmp[:6])
		pw.tmp[0] = pal[0].A
		pw.tmp[1] = pal[1].A
		for a := 2; a > 0; a-- {
			if pw.tmp[a-1] != 0xff {
				pw.writeChunk("tRNS", pw.tmp[:a])
				break
			}
		}
	}

	// Data.  In gray images bit 1 is white, in paletted ones it
	// selects the foreground.
	data, err := c.deflate(pix, gray && pal[0].R == 0xff)
	if err != nil {
		return err
	}
	for len(data) > chunkSize {
		pw.writeChunk("IDAT", data[:chunkSize])
		data = data[chunkSize:]
	}
	pw.writeChunk("IDAT", data)

	// End
	pw.writeChunk("IEND", nil)

	_, err = pw.buf.WriteTo(w)
	return err
}

// deflate returns the zlib compressed image data: pix rows of pix
// pixels, each preceded by filter type none.
func (c *Code) deflate(pix int, invert bool) ([]byte, error) {
	var b bytes.Buffer
	z, err := zlib.NewWriterLevel(&b, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	row := make([]byte, 1+(pix+7)/8)
	for y := 0; y < pix; y += c.Scale {
		c.scanline(row[1:], y, invert)
		for i := 0; i < c.Scale; i++ {
			if _, err := z.Write(row); err != nil {
				return nil, err
			}
		}
	}
	if err := z.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// palette returns the background and foreground colours and whether
// they are opaque black and white, in either order, and can be encoded
// in grayscale.
func (c *Code) palette() ([2]color.RGBA, bool) {
	const b, w, o = 0x00, 0xff, 0xff // black, white, opaque
	var pal [2]color.RGBA
	for i, v := range c.colors() {
		r, g, b, a := v.RGBA()
		pal[i] = color.RGBA{byte(r >> 8), byte(g >> 8),
			byte(b >> 8), byte(a >> 8)}
	}
	switch pal {
	case [2]color.RGBA{{w, w, w, o}, {b, b, b, o}},
		[2]color.RGBA{{b, b, b, o}, {w, w, w, o}}:
		return pal, true
	}
	return pal, false
}

const (
	pngHeader = "\x89PNG\r\n\x1a\n"
	chunkSize = 0x8000 // chunks split after 32 KB
)

// A pngWriter assembles PNG chunks.
type pngWriter struct {
	buf   bytes.Buffer
	tmp   [16]byte
	start int
}

func (w *pngWriter) writeChunk(name string, data []byte) {
	w.start = w.buf.Len()
	w.buf.WriteString(name) // length placeholder
	w.buf.WriteString(name)
	w.buf.Write(data)
	w.endChunkAt(w.buf.Bytes()[w.start:])
}

func (w *pngWriter) endChunkAt(b []byte) {
	binary.BigEndian.PutUint32(b, uint32(len(b)-8))
	binary.BigEndian.PutUint32(w.tmp[0:4], crc32.ChecksumIEEE(b[4:]))
	w.buf.Write(w.tmp[0:4])
}
