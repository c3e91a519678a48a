// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// Cell bits.  Function pattern cells have CellReserved set and one of
// the pattern tags; data cells have CellData.  Bit 0 is the colour.
const (
	CellDark      byte = 0x01 // dark module
	CellData      byte = 0x02 // data or remainder bit
	CellFormat    byte = 0x04 // format information
	CellVersion   byte = 0x08 // version information
	CellTiming    byte = 0x10 // timing pattern, dark module
	CellAlignment byte = 0x20 // alignment pattern
	CellFinder    byte = 0x40 // finder pattern, separator
	CellReserved  byte = 0x80 // function pattern, never masked

	finderDark = CellReserved | CellFinder | CellDark
	finderLite = CellReserved | CellFinder
	alignDark  = CellReserved | CellAlignment | CellDark
	alignLite  = CellReserved | CellAlignment
	timing     = CellReserved | CellTiming
	formatCell = CellReserved | CellFormat
	versCell   = CellReserved | CellVersion
)

// A Matrix is a square grid of cells, stored row by row.
type Matrix struct {
	Size  int
	Cells []byte
}

// NewMatrix returns an empty matrix with size cells on a side.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, Cells: make([]byte, size*size)}
}

// At returns the cell in column x, row y.
func (m *Matrix) At(x, y int) byte {
	return m.Cells[y*m.Size+x]
}

// Set sets the cell in column x, row y.
func (m *Matrix) Set(x, y int, c byte) {
	m.Cells[y*m.Size+x] = c
}

// Dark reports whether the cell in column x, row y is dark.
func (m *Matrix) Dark(x, y int) bool {
	return m.Cells[y*m.Size+x]&CellDark != 0
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.Cells = append([]byte(nil), m.Cells...)
	return &c
}

var frames [MaxVersion + 1]struct {
	once sync.Once
	m    *Matrix
}

// Frame returns a new matrix for version v holding the function
// patterns: finders with separators, timing, alignment patterns,
// version information, the dark module, and format information
// placeholders.  Frames are built once per version and copied.
func Frame(v Version) *Matrix {
	if !v.IsValid() {
		panic(InternalError("invalid version " + v.String()))
	}
	f := &frames[v]
	f.once.Do(func() { f.m = makeFrame(v) })
	return f.m.Clone()
}

func makeFrame(v Version) *Matrix {
	w := v.Width()
	m := NewMatrix(w)

	// Finder patterns with separators.
	for _, p := range [3][2]int{{0, 0}, {w - 7, 0}, {0, w - 7}} {
		finder(m, p[0], p[1])
	}
	for i := 0; i < 8; i++ {
		m.Set(7, i, finderLite)
		m.Set(w-8, i, finderLite)
		m.Set(7, w-1-i, finderLite)
		m.Set(i, 7, finderLite)
		m.Set(w-1-i, 7, finderLite)
		m.Set(i, w-8, finderLite)
	}

	// Format information placeholders.
	for i := 0; i < 9; i++ {
		m.Set(i, 8, formatCell)
		m.Set(8, i, formatCell)
	}
	for i := 0; i < 8; i++ {
		m.Set(w-1-i, 8, formatCell)
		m.Set(8, w-1-i, formatCell)
	}

	// Timing patterns.
	for i := 8; i < w-8; i++ {
		c := timing | byte(i+1)&1
		m.Set(i, 6, c)
		m.Set(6, i, c)
	}

	// Alignment patterns, except where they would overlap finders.
	ac := v.Alignment()
	for i, y := range ac {
		for j, x := range ac {
			if i == 0 && j == 0 || i == 0 && j == len(ac)-1 ||
				i == len(ac)-1 && j == 0 {
				continue
			}
			alignment(m, x, y)
		}
	}

	// Version information.
	if pat := v.Pattern(); pat != 0 {
		for x := 0; x < 6; x++ {
			for y := 0; y < 3; y++ {
				c := versCell | byte(pat&1)
				m.Set(x, w-11+y, c)
				m.Set(w-11+y, x, c)
				pat >>= 1
			}
		}
	}

	// Dark module.
	m.Set(8, w-8, CellReserved|CellTiming|CellDark)
	return m
}

// finder draws a finder pattern with top left corner at x, y.
func finder(m *Matrix, x, y int) {
	for dy := 0; dy < 7; dy++ {
		for dx := 0; dx < 7; dx++ {
			c := finderDark
			if (dx == 1 || dx == 5) && 0 < dy && dy < 6 ||
				(dy == 1 || dy == 5) && 0 < dx && dx < 6 {
				c = finderLite
			}
			m.Set(x+dx, y+dy, c)
		}
	}
}

// alignment draws an alignment pattern centred at x, y.
func alignment(m *Matrix, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c := alignDark
			if max(abs(dx), abs(dy)) == 1 {
				c = alignLite
			}
			m.Set(x+dx, y+dy, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
