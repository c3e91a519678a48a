// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// EncodedLength returns the encoded length in bits of segs at size
// class class.
func EncodedLength(segs []Segment, class int) int {
	n := 0
	for _, seg := range segs {
		n += seg.EncodedLength(class)
	}
	return n
}

// ChooseVersion returns the smallest version that holds segs at level
// l.  The length fields widen with the version, so the estimate is
// repeated until the version stops growing.
func ChooseVersion(segs []Segment, l Level) (Version, error) {
	v := MinVersion
	for i := 0; ; i++ {
		if i > int(MaxVersion) {
			panic(InternalError("version estimate does not converge"))
		}
		class := v.SizeClass()
		nbit := EncodedLength(segs, class)
		if nbit <= v.DataBits(l) {
			return v, nil
		}
		nv, ok := VersionFor(nbit, l)
		if !ok {
			if class == Class2 {
				return 0, &CapacityError{
					Bits:  nbit,
					Max:   MaxVersion.DataBits(l),
					Level: l,
				}
			}
			nv, _ = ClassRange(class + 1)
		}
		v = max(nv, v+1)
	}
}

// BuildBitstream encodes segs at the smallest version that holds them
// at level l, and returns the data codewords, padded to the capacity
// of the version, and the version.
func BuildBitstream(segs []Segment, l Level) ([]byte, Version, error) {
	for _, seg := range segs {
		if err := seg.Validate(); err != nil {
			return nil, 0, err
		}
	}
	v, err := ChooseVersion(segs, l)
	if err != nil {
		return nil, 0, err
	}
	class := v.SizeClass()
	nw := v.DataWords(l)
	b := NewBits(nw)
	for _, seg := range segs {
		for _, c := range seg.Chunks(class) {
			c.Encode(b, class)
		}
	}
	if b.Bits() != EncodedLength(segs, class) {
		panic(InternalError("encoded length mismatch"))
	}
	b.PadTo(4, nw)
	if len(b.Bytes()) != nw {
		panic(InternalError("too much data"))
	}
	return b.Bytes(), v, nil
}
