// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsWrite(t *testing.T) {
	t.Parallel()
	b := NewBits(8)
	b.Write(0x1, 4)
	b.Write(0x2a, 6)
	b.Write(0, 0)
	b.Write(0x3, 2)
	b.Write(0xabcdef, 24)
	assert.Equal(t, 36, b.Bits())
	b.Write(0xf, 4)
	assert.Equal(t, 40, b.Bits())
	assert.Equal(t, []byte{0x1a, 0xba, 0xbc, 0xde, 0xff}, b.b)
	assert.NotPanics(t, func() { b.Bytes() })

	b.Reset()
	assert.Zero(t, b.Bits())
	b.Write(1, 1)
	assert.Panics(t, func() { b.Bytes() })
	b.Write(0xffffffff, 32)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x80}, b.b)
	assert.Equal(t, 33, b.Bits())
}

func TestBitsPadTo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		nbit  int
		n     int
		want  []byte
		value uint32
	}{
		{"empty", 0, 4, []byte{0x00, 0xec, 0x11, 0xec}, 0},
		{"terminator", 4, 3, []byte{0xa0, 0xec, 0x11}, 0xa},
		{"short terminator", 22, 3, []byte{0xff, 0xff, 0xfc}, 0x3fffff},
		{"full", 24, 3, []byte{0xff, 0xff, 0xff}, 0xffffff},
		{"boundary", 8, 3, []byte{0x5a, 0x00, 0xec}, 0x5a},
	}
	for _, tt := range tests {
		b := NewBits(tt.n)
		b.Write(tt.value, tt.nbit)
		b.PadTo(4, tt.n)
		assert.Equal(t, tt.want, b.Bytes(), tt.name)
		assert.Equal(t, tt.n*8, b.Bits(), tt.name)
	}
}
