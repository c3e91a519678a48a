// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A filler walks the data modules of a frame in placement order:
// two-column strips from the right edge, alternately upwards and
// downwards, skipping the vertical timing pattern and reserved cells.
type filler struct {
	m    *Matrix
	x, y int
	dir  int // -1 upwards, 1 downwards
	bit  int // 0 right column, 1 left column, -1 before start
}

func newFiller(m *Matrix) *filler {
	return &filler{m: m, x: m.Size - 1, y: m.Size - 1, dir: -1, bit: -1}
}

// next returns the coordinates of the next data module.
func (f *filler) next() (int, int) {
	if f.bit == -1 {
		f.bit = 0
		return f.x, f.y
	}
	w := f.m.Size
	x, y := f.x, f.y
	for {
		if f.bit == 0 {
			x--
			f.bit++
		} else {
			x++
			y += f.dir
			f.bit--
		}
		if f.dir < 0 {
			if y < 0 {
				y = 0
				x -= 2
				f.dir = 1
				if x == 6 {
					x--
					y = 9
				}
			}
		} else if y == w {
			y = w - 1
			x -= 2
			f.dir = -1
			if x == 6 {
				x--
				y -= 8
			}
		}
		if x < 0 || y < 0 {
			panic(InternalError("placement ran off the matrix"))
		}
		if f.m.At(x, y)&CellReserved == 0 {
			f.x, f.y = x, y
			return x, y
		}
	}
}

// Place returns a copy of frame with codewords written most
// significant bit first along the placement path, followed by
// remainder zero bits.  Data cells are tagged CellData.
func Place(frame *Matrix, codewords []byte, remainder int) *Matrix {
	m := frame.Clone()
	f := newFiller(m)
	for _, c := range codewords {
		for i := 7; i >= 0; i-- {
			x, y := f.next()
			m.Set(x, y, CellData|c>>i&1)
		}
	}
	for i := 0; i < remainder; i++ {
		x, y := f.next()
		m.Set(x, y, CellData)
	}
	return m
}
