// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64,
		236, 17, 236, 17, 236, 17}
	b := SplitBlocks(data, 1, M)
	require.Len(t, b, 1)
	assert.Equal(t, data, b[0].Data)
	assert.Equal(t, []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23},
		b[0].ECC)

	// 5-Q: two blocks of 15 data codewords, two of 16, 18 check
	// codewords each.
	data = make([]byte, Version(5).DataWords(Q))
	for i := range data {
		data[i] = byte(i)
	}
	b = SplitBlocks(data, 5, Q)
	require.Len(t, b, 4)
	for i, n := range []int{15, 15, 16, 16} {
		assert.Len(t, b[i].Data, n, "block %d", i)
		assert.Len(t, b[i].ECC, 18, "block %d", i)
	}
	assert.Equal(t, byte(30), b[2].Data[0])
	assert.Equal(t, []byte{18, 2, 146, 45, 123, 16, 142, 131, 65, 97,
		218, 220, 235, 199, 3, 223, 149, 138}, b[2].ECC)

	assert.Panics(t, func() { SplitBlocks(data[1:], 5, Q) })
}

func TestInterleave(t *testing.T) {
	t.Parallel()
	blocks := []Block{
		{Data: []byte{1, 2}, ECC: []byte{21, 22}},
		{Data: []byte{3, 4}, ECC: []byte{23, 24}},
		{Data: []byte{5, 6, 7}, ECC: []byte{25, 26}},
		{Data: []byte{8, 9, 10}, ECC: []byte{27, 28}},
	}
	want := []byte{1, 3, 5, 8, 2, 4, 6, 9, 7, 10, 21, 23, 25, 27, 22, 24, 26, 28}
	if diff := cmp.Diff(want, Interleave(blocks)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			data := make([]byte, v.DataWords(l))
			require.Len(t, Interleave(SplitBlocks(data, v, l)),
				v.Words(), "%d-%s", v, l)
		}
	}
}
