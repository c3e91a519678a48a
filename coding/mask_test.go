// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskFuncs(t *testing.T) {
	t.Parallel()
	// Conditions for inverting the module in row i, column j.
	conds := [NumMasks]func(i, j int) bool{
		func(i, j int) bool { return (i+j)%2 == 0 },
		func(i, j int) bool { return i%2 == 0 },
		func(i, j int) bool { return j%3 == 0 },
		func(i, j int) bool { return (i+j)%3 == 0 },
		func(i, j int) bool { return (i/2+j/3)%2 == 0 },
		func(i, j int) bool { return i*j%2+i*j%3 == 0 },
		func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
		func(i, j int) bool { return ((i+j)%2+i*j%3)%2 == 0 },
	}
	frame := Frame(2)
	placed := Place(frame, make([]byte, Version(2).Words()), 0)
	for k := 0; k < NumMasks; k++ {
		m := ApplyMask(placed, M, k)
		for i := 0; i < m.Size; i++ {
			for j := 0; j < m.Size; j++ {
				c := m.At(j, i)
				if c&CellReserved != 0 {
					if c&CellFormat == 0 {
						require.Equal(t, frame.At(j, i), c)
					}
					continue
				}
				require.Equal(t, conds[k](i, j), c&CellDark != 0,
					"mask %d row %d col %d", k, i, j)
			}
		}
	}
}

// readFormat reads both copies of the format information from m.
func readFormat(m *Matrix) (a, b uint16) {
	w := m.Size
	bit := func(x, y, i int) uint16 {
		return uint16(m.At(x, y)&CellDark) << i
	}
	for i := 0; i < 8; i++ {
		a |= bit(w-1-i, 8, i)
	}
	for i := 0; i < 7; i++ {
		a |= bit(8, w-7+i, i+8)
	}
	for i := 0; i < 6; i++ {
		b |= bit(8, i, i)
	}
	b |= bit(8, 7, 6) | bit(8, 8, 7) | bit(7, 8, 8)
	for i := 9; i < 15; i++ {
		b |= bit(14-i, 8, i)
	}
	return a, b
}

func TestWriteFormat(t *testing.T) {
	t.Parallel()
	for _, v := range []Version{1, 10} {
		placed := Place(Frame(v), make([]byte, v.Words()), v.Remainder())
		for l := L; l <= H; l++ {
			for k := 0; k < NumMasks; k++ {
				a, b := readFormat(ApplyMask(placed, l, k))
				assert.Equal(t, FormatBits(l, k), a, "%d-%s mask %d", v, l, k)
				assert.Equal(t, FormatBits(l, k), b, "%d-%s mask %d", v, l, k)
			}
		}
	}
}

const (
	dk = CellDark
	lt = byte(0)
)

func TestLinePenalty(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line []byte
		want int
	}{
		{"empty", nil, 0},
		{"run of 4", []byte{dk, dk, dk, dk, lt}, 0},
		{"run of 5", []byte{dk, dk, dk, dk, dk, lt}, 3},
		{"run of 7", []byte{lt, lt, lt, lt, lt, lt, lt}, 5},
		{"finder at edge", []byte{
			dk, lt, dk, dk, dk, lt, dk, lt, lt, lt, lt}, 40},
		{"finder, short margins", []byte{
			dk, lt, lt, dk, lt, dk, dk, dk, lt, dk, lt, lt, dk}, 0},
		{"finder, left margin", []byte{
			dk, lt, lt, lt, lt, dk, lt, dk, dk, dk, lt, dk, lt, lt, dk}, 40},
		{"finder, right margin", []byte{
			dk, lt, lt, dk, lt, dk, dk, dk, lt, dk, lt, lt, lt, lt, dk}, 40},
		{"wide finder", []byte{
			lt, lt, lt, lt, dk, dk, lt, lt, dk, dk, dk, dk, dk, dk,
			lt, lt, dk, dk}, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, linePenalty(tt.line, nil), tt.name)
	}
}

func TestPenalty(t *testing.T) {
	t.Parallel()
	// All light: 42 runs of 21, 400 blocks, 0% dark.
	m := NewMatrix(21)
	assert.Equal(t, 42*19+400*3+100, Penalty(m))

	// Checkerboard: no runs, no blocks, 221 of 441 dark.
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if (x+y)&1 == 0 {
				m.Set(x, y, CellDark)
			}
		}
	}
	assert.Equal(t, 0, Penalty(m))

	// Stripes: every row a run of 21, no blocks, 11 of 21 rows dark.
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			m.Set(x, y, byte(y+1)&CellDark)
		}
	}
	assert.Equal(t, 21*19, Penalty(m))
}

// helloWorld is the data of "HELLO WORLD" at 1-M.
var helloWorld = []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64,
	236, 17, 236, 17, 236, 17}

func TestSelectMask(t *testing.T) {
	t.Parallel()
	words := Interleave(SplitBlocks(helloWorld, 1, M))
	placed := Place(Frame(1), words, 0)
	want := [NumMasks]int{1031, 1086, 1162, 1063, 1087, 1168, 1115, 1045}
	for k := range want {
		assert.Equal(t, want[k], Penalty(ApplyMask(placed, M, k)),
			"mask %d", k)
	}

	sel := SelectMask(placed, M, BestMask(), 1)
	assert.Equal(t, 0, sel.Mask)
	assert.Equal(t, 1031, sel.Penalty)
	assert.Equal(t, ApplyMask(placed, M, 0), sel.Matrix)

	for workers := 0; workers <= 9; workers += 3 {
		got := SelectMask(placed, M, BestMask(), workers)
		assert.Equal(t, sel, got, "%d workers", workers)
	}

	sel = SelectMask(placed, M, FixedMask(5), 4)
	assert.Equal(t, 5, sel.Mask)
	assert.Equal(t, 1168, sel.Penalty)

	policy := SampledMask(3, 42)
	cand := policy.Candidates()
	require.Len(t, cand, 3)
	sel = SelectMask(placed, M, policy, 2)
	assert.Contains(t, cand, sel.Mask)
	for _, k := range cand {
		assert.LessOrEqual(t, sel.Penalty, want[k])
	}
}

func TestMaskPolicy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, BestMask(), MaskPolicy{})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, BestMask().Candidates())
	assert.Equal(t, []int{3}, FixedMask(3).Candidates())
	assert.Equal(t, "best", BestMask().String())
	assert.Equal(t, "fixed(3)", FixedMask(3).String())
	assert.Equal(t, "sampled(2)", SampledMask(2, 0).String())

	for k := 1; k <= NumMasks; k++ {
		p := SampledMask(k, 7)
		c := p.Candidates()
		require.Len(t, c, k)
		assert.IsIncreasing(t, c)
		assert.Equal(t, c, p.Candidates(), "deterministic")
		for _, m := range c {
			assert.True(t, 0 <= m && m < NumMasks)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7},
		SampledMask(NumMasks, 99).Candidates())

	for _, p := range []MaskPolicy{FixedMask(-1), FixedMask(8),
		SampledMask(0, 1), SampledMask(9, 1), {kind: 3}} {
		assert.False(t, p.IsValid(), p.String())
		assert.Panics(t, func() { p.Candidates() })
	}
}
