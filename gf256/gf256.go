// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gf256 implements arithmetic over the Galois field GF(256) and
systematic Reed-Solomon encoding over it.

Field elements are bytes.  A Field keeps two tables: the element for
each exponent of the generator α, and the exponent (discrete logarithm)
of each non-zero element.  The logarithm of zero is represented by the
sentinel A0.

The Reed-Solomon encoder keeps its generator polynomial in exponent
form, so that multiplication in the feedback loop is a table lookup.
*/
package gf256 // import "github.com/unixdj/qrencode/gf256"

import (
	"fmt"
	"sync"
)

// A0 is the logarithm of zero.
const A0 = 255

// QRPoly is the primitive polynomial x^8+x^4+x^3+x^2+1 used by QR codes.
const QRPoly = 0x11d

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	exp [256]byte // exp[i] = α^i, exp[A0] = 0
	log [256]byte // log[exp[i]] = i, log[0] = A0
}

// NewField returns a new field corresponding to the polynomial poly,
// with α = x as generator.  NewField panics if poly is not primitive,
// i.e. if x does not generate all 255 non-zero elements.
func NewField(poly int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic(fmt.Sprintf("gf256: invalid polynomial %#x", poly))
	}
	var f Field
	sr := 1
	for i := 0; i < A0; i++ {
		if i != 0 && sr == 1 {
			panic(fmt.Sprintf("gf256: polynomial %#x not primitive",
				poly))
		}
		f.log[sr] = byte(i)
		f.exp[i] = byte(sr)
		sr <<= 1
		if sr&0x100 != 0 {
			sr ^= poly
		}
		sr &= 0xff
	}
	if sr != 1 {
		panic(fmt.Sprintf("gf256: polynomial %#x not primitive", poly))
	}
	f.log[0] = A0
	f.exp[A0] = 0
	return &f
}

// modnn reduces x modulo 255.
func modnn(x int) int {
	for x >= A0 {
		x -= A0
		x = x>>8 + x&A0
	}
	return x
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the generator α raised to the power e.
func (f *Field) Exp(e int) byte {
	if e %= A0; e < 0 {
		e += A0
	}
	return f.exp[e]
}

// Log returns the discrete logarithm of x, or A0 if x is zero.
func (f *Field) Log(x byte) int {
	return int(f.log[x])
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[modnn(int(f.log[x])+int(f.log[y]))]
}

// Inv returns the multiplicative inverse of x.  Inv panics if x is zero.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		panic("gf256: zero has no inverse")
	}
	return f.exp[modnn(A0-int(f.log[x]))]
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.  The generator
// polynomial has the roots α^0, α^1, ..., α^(nroots-1).
type RSEncoder struct {
	f      *Field
	nroots int
	gen    []byte // coefficients in exponent form, gen[nroots] is 1
}

// NewRSEncoder returns a new Reed-Solomon encoder over f producing
// nroots check bytes.
func NewRSEncoder(f *Field, nroots int) *RSEncoder {
	if nroots < 1 || nroots >= A0 {
		panic(fmt.Sprintf("gf256: invalid number of roots %d", nroots))
	}
	gen := make([]byte, nroots+1)
	gen[0] = 1
	for i, root := 0, 0; i < nroots; i, root = i+1, root+1 {
		gen[i+1] = 1
		for j := i; j > 0; j-- {
			if gen[j] != 0 {
				gen[j] = gen[j-1] ^
					f.exp[modnn(int(f.log[gen[j]])+root)]
			} else {
				gen[j] = gen[j-1]
			}
		}
		gen[0] = f.exp[modnn(int(f.log[gen[0]])+root)]
	}
	for i := range gen {
		gen[i] = f.log[gen[i]]
	}
	return &RSEncoder{f: f, nroots: nroots, gen: gen}
}

// Roots returns the number of check bytes produced by rs.
func (rs *RSEncoder) Roots() int { return rs.nroots }

// ECC writes the check bytes for data to check, which must hold
// exactly rs.Roots() bytes.  Blocks shorter than 255-Roots() bytes are
// shortened codes, as if padded with leading zeros.
func (rs *RSEncoder) ECC(data, check []byte) {
	nroots := rs.nroots
	if len(check) != nroots {
		panic("gf256: invalid check byte length")
	}
	if len(data)+nroots > A0 {
		panic("gf256: block too long")
	}
	f, gen := rs.f, rs.gen
	clear(check)
	for _, d := range data {
		fb := int(f.log[d^check[0]])
		if fb != A0 {
			for j := 1; j < nroots; j++ {
				check[j] ^= f.exp[modnn(fb+int(gen[nroots-j]))]
			}
		}
		copy(check, check[1:])
		if fb != A0 {
			check[nroots-1] = f.exp[modnn(fb+int(gen[0]))]
		} else {
			check[nroots-1] = 0
		}
	}
}

var (
	qrField    *Field
	qrOnce     sync.Once
	qrEncoders [A0]struct {
		once sync.Once
		rs   *RSEncoder
	}
)

// QR returns the field used by QR codes.
func QR() *Field {
	qrOnce.Do(func() { qrField = NewField(QRPoly) })
	return qrField
}

// Encode returns nroots Reed-Solomon check bytes for data over the QR
// field.  Encoders are built once per nroots and shared.
func Encode(data []byte, nroots int) []byte {
	if nroots < 1 || nroots >= A0 {
		panic(fmt.Sprintf("gf256: invalid number of roots %d", nroots))
	}
	e := &qrEncoders[nroots]
	e.once.Do(func() { e.rs = NewRSEncoder(QR(), nroots) })
	check := make([]byte, nroots)
	e.rs.ECC(data, check)
	return check
}
