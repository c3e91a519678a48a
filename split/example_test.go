// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split_test

import (
	"fmt"
	"log"

	"golang.org/x/text/encoding/japanese"

	"github.com/unixdj/qrencode/coding"
	"github.com/unixdj/qrencode/split"
)

func ExampleSplit() {
	// Kanji mode holds Shift JIS, so convert the string first.
	s, err := japanese.ShiftJIS.NewEncoder().String("点茗 QR 12345678")
	if err != nil {
		log.Fatalln(err)
	}

	segs := split.Split(s, coding.Class0, split.Options{Kanji: true})
	dec := japanese.ShiftJIS.NewDecoder()
	for _, seg := range segs {
		// Convert the text back to UTF-8 for printing.
		t, err := dec.String(seg.Text)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%-12s %3d bits  %q\n",
			seg.Mode, seg.EncodedLength(coding.Class0), t)
	}
	fmt.Println(coding.EncodedLength(segs, coding.Class0), "bits")
	// Output:
	// kanji         38 bits  "点茗"
	// alphanumeric  35 bits  " QR "
	// numeric       41 bits  "12345678"
	// 114 bits
}

func ExampleUpper() {
	s := split.Upper("https://example.com/QR", false)
	fmt.Println(s)
	for _, seg := range split.Split(s, coding.Class0, split.Options{}) {
		fmt.Println(seg)
	}
	// Output:
	// HTTPS://EXAMPLE.COM/QR
	// alphanumeric("HTTPS://EXAMPLE.COM/QR")
}
