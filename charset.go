// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// ShiftJIS converts UTF-8 text to Shift JIS, so that kanji can be
// encoded in kanji mode with Config.Kanji set.  ASCII characters are
// unchanged.
func ShiftJIS(s string) (string, error) {
	return japanese.ShiftJIS.NewEncoder().String(s)
}

// Latin1 converts UTF-8 text to ISO 8859-1, the default character set
// of byte mode segments.
func Latin1(s string) (string, error) {
	return charmap.ISO8859_1.NewEncoder().String(s)
}
