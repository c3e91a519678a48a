// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrencode/gf256"

// A Block is a Reed-Solomon block: data codewords and their check
// codewords.
type Block struct {
	Data []byte
	ECC  []byte
}

// SplitBlocks splits the data codewords of version v at level l into
// blocks and computes their check codewords.
func SplitBlocks(data []byte, v Version, l Level) []Block {
	if len(data) != v.DataWords(l) {
		panic(InternalError("data length does not match version"))
	}
	bl := v.Blocks(l)
	blocks := make([]Block, bl.Short+bl.Long)
	n := bl.ShortData
	for i := range blocks {
		if i == bl.Short {
			n++
		}
		blocks[i] = Block{
			Data: data[:n:n],
			ECC:  gf256.Encode(data[:n], bl.ECC),
		}
		data = data[n:]
	}
	return blocks
}

// Interleave returns the codewords of blocks in transmission order:
// data codewords column by column, skipping blocks exhausted early,
// then check codewords column by column.
func Interleave(blocks []Block) []byte {
	var nd, ne, maxd int
	for _, b := range blocks {
		nd += len(b.Data)
		ne += len(b.ECC)
		maxd = max(maxd, len(b.Data))
	}
	out := make([]byte, 0, nd+ne)
	for i := 0; i < maxd; i++ {
		for _, b := range blocks {
			if i < len(b.Data) {
				out = append(out, b.Data[i])
			}
		}
	}
	for i := 0; len(out) < nd+ne; i++ {
		for _, b := range blocks {
			out = append(out, b.ECC[i])
		}
	}
	return out
}
