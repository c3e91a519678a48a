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

func TestVersionTables(t *testing.T) {
	t.Parallel()
	for v := MinVersion; v <= MaxVersion; v++ {
		require.Equal(t, (v.Width()*v.Width()-v.functionCells())/8,
			v.Words(), "version %d", v)
		for l := L; l <= H; l++ {
			bl := v.Blocks(l)
			n := bl.Short + bl.Long
			require.Positive(t, bl.Short, "%d-%s", v, l)
			assert.Equal(t, v.DataWords(l),
				n*bl.ShortData+bl.Long, "%d-%s data", v, l)
			assert.Equal(t, v.ECCWords(l), n*bl.ECC, "%d-%s ecc", v, l)
			assert.LessOrEqual(t, bl.ShortData+1+bl.ECC, 255)
			if l > L {
				assert.Less(t, v.DataWords(l), v.DataWords(l-1))
			}
		}
		if v > MinVersion {
			assert.Greater(t, v.DataWords(L), (v - 1).DataWords(L))
		}
	}
}

// functionCells returns the number of reserved cells in the frame of
// v, counted from the frame itself.
func (v Version) functionCells() int {
	n := 0
	for _, c := range Frame(v).Cells {
		if c&CellReserved != 0 {
			n++
		}
	}
	return n
}

func TestVersionCapacity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    Version
		want [4]int
	}{
		{1, [4]int{19, 16, 13, 9}},
		{5, [4]int{108, 86, 62, 46}},
		{40, [4]int{2956, 2334, 1666, 1276}},
	}
	for _, tt := range tests {
		for l := L; l <= H; l++ {
			assert.Equal(t, tt.want[l], tt.v.DataWords(l),
				"%d-%s", tt.v, l)
			assert.Equal(t, tt.want[l]*8, tt.v.DataBits(l))
		}
	}
	assert.Equal(t, 26, Version(1).Words())
	assert.Equal(t, 7, Version(5).Remainder())
	assert.Equal(t, 177, Version(40).Width())
}

func TestAlignment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    Version
		want []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{14, []int{6, 26, 46, 66}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.Alignment(), "version %d", tt.v)
	}
	for v := Version(2); v <= MaxVersion; v++ {
		a := v.Alignment()
		assert.Equal(t, v.Width()-7, a[len(a)-1], "version %d", v)
	}
}

func TestSizeClass(t *testing.T) {
	t.Parallel()
	for v := MinVersion; v <= MaxVersion; v++ {
		min, max := ClassRange(v.SizeClass())
		assert.True(t, min <= v && v <= max, "version %d", v)
	}
	assert.Equal(t, Class0, Version(9).SizeClass())
	assert.Equal(t, Class1, Version(10).SizeClass())
	assert.Equal(t, Class1, Version(26).SizeClass())
	assert.Equal(t, Class2, Version(27).SizeClass())
}

func TestVersionFor(t *testing.T) {
	t.Parallel()
	for l := L; l <= H; l++ {
		for v := MinVersion; v <= MaxVersion; v++ {
			got, ok := VersionFor(v.DataBits(l), l)
			require.True(t, ok)
			require.Equal(t, v, got, "%d-%s", v, l)
			got, ok = VersionFor(v.DataBits(l)+1, l)
			if v == MaxVersion {
				require.False(t, ok)
			} else {
				require.Equal(t, v+1, got, "%d-%s", v, l)
			}
		}
	}
	v, ok := VersionFor(0, H)
	assert.True(t, ok)
	assert.Equal(t, MinVersion, v)
}

func TestVersionPattern(t *testing.T) {
	t.Parallel()
	for v := MinVersion; v < 7; v++ {
		assert.Zero(t, v.Pattern())
	}
	assert.Equal(t, uint32(0x07c94), Version(7).Pattern())
	assert.Equal(t, uint32(0x28c69), Version(40).Pattern())
}
