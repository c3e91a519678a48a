// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrencode/coding"
)

// rows renders c as strings, '#' for black.
func rows(c *coding.Code) []string {
	r := make([]string, c.Size)
	for y := range r {
		var b strings.Builder
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		r[y] = b.String()
	}
	return r
}

func TestEncodeHelloWorld(t *testing.T) {
	t.Parallel()
	c, err := coding.Encode(
		[]coding.Segment{{Mode: coding.Alphanumeric, Text: "HELLO WORLD"}},
		coding.M, coding.Options{})
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), c.Version)
	assert.Equal(t, coding.M, c.Level)
	assert.Equal(t, 0, c.Mask)
	assert.Equal(t, 1031, c.Penalty)
	assert.Equal(t, 21, c.Size)
	assert.Equal(t, 3, c.Stride)
	want := []string{
		"#######...#.#.#######",
		"#.....#.###...#.....#",
		"#.###.#...#.#.#.###.#",
		"#.###.#...#.#.#.###.#",
		"#.###.#.#.###.#.###.#",
		"#.....#..###..#.....#",
		"#######.#.#.#.#######",
		".....................",
		"#.#.#.#..#..#...#..#.",
		".####...#..#....#...#",
		"...#######.#..#.##...",
		"####.#.##..###.#.###.",
		".#..####.#.#..###.#.#",
		"........#.#...#...#.#",
		"#######.....#..#.##..",
		"#.....#..##...##.#...",
		"#.###.#.##..#.#######",
		"#.###.#...##.#.#...#.",
		"#.###.#.####.###.#..#",
		"#.....#....###...#.##",
		"#######.##.#.###....#",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("HELLO WORLD 1-M (-want +got)\n%s", diff)
	}
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, 21))

	// Other masks and worker counts give the same result.
	for _, workers := range []int{0, 2, 8} {
		c2, err := coding.Encode(
			[]coding.Segment{{Mode: coding.Alphanumeric, Text: "HELLO WORLD"}},
			coding.M, coding.Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, c.Bitmap, c2.Bitmap, "%d workers", workers)
	}
}

func TestEncodeFixedMask(t *testing.T) {
	t.Parallel()
	segs := []coding.Segment{{Mode: coding.Alphanumeric, Text: "HELLO WORLD"}}
	for k := 0; k < coding.NumMasks; k++ {
		c, err := coding.Encode(segs, coding.M,
			coding.Options{Mask: coding.FixedMask(k)})
		require.NoError(t, err)
		assert.Equal(t, k, c.Mask)
		// Finder patterns are never masked.
		assert.True(t, c.Black(0, 0))
		assert.False(t, c.Black(1, 1))
		assert.True(t, c.Black(c.Size-1, 0))
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()
	_, err := coding.Encode(
		[]coding.Segment{{Mode: coding.Numeric, Text: strings.Repeat("7", 7090)}},
		coding.L, coding.Options{})
	assert.ErrorIs(t, err, coding.ErrCapacity)

	_, err = coding.Encode(
		[]coding.Segment{{Mode: coding.Alphanumeric, Text: "hello"}},
		coding.L, coding.Options{})
	assert.ErrorIs(t, err, coding.ErrInvalidInput)

	c, err := coding.Encode(
		[]coding.Segment{{Mode: coding.Numeric, Text: strings.Repeat("7", 7089)}},
		coding.L, coding.Options{})
	require.NoError(t, err)
	assert.Equal(t, coding.MaxVersion, c.Version)
	assert.Equal(t, 177, c.Size)
	assert.Equal(t, 23, c.Stride)
}

func TestPack(t *testing.T) {
	t.Parallel()
	m := coding.NewMatrix(10)
	m.Set(0, 0, coding.CellDark)
	m.Set(9, 0, coding.CellData|coding.CellDark)
	m.Set(8, 9, coding.CellReserved|coding.CellDark)
	m.Set(3, 3, coding.CellData)
	c := coding.Pack(m)
	assert.Equal(t, 10, c.Size)
	assert.Equal(t, 2, c.Stride)
	want := make([]byte, 20)
	want[0] = 0x80
	want[1] = 0x40
	want[19] = 0x80
	assert.Equal(t, want, c.Bitmap)
}

func ExampleEncode() {
	c, err := coding.Encode([]coding.Segment{
		{Mode: coding.Alphanumeric, Text: "HELLO WORLD"},
	}, coding.M, coding.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("version %d-%s, %dx%d, mask %d\n",
		c.Version, c.Level, c.Size, c.Size, c.Mask)
	// Output:
	// version 1-M, 21x21, mask 0
}
