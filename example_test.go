// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/unixdj/qrencode"
)

func ExampleEncode() {
	c, err := qrencode.Encode("https://example.com/", nil)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %d-%s, %d modules, %d pixels\n",
		c.Version, c.Level, c.Size, c.Image().Bounds().Dx())
	// Output:
	// version 2-L, 25 modules, 99 pixels
}

func ExampleEncode_errors() {
	_, err := qrencode.Encode(strings.Repeat("9", 7090), nil)
	fmt.Println(errors.Is(err, qrencode.ErrCapacity))

	cfg := qrencode.DefaultConfig()
	cfg.Mode = qrencode.ModeNumeric
	_, err = qrencode.Encode("12a", &cfg)
	fmt.Println(err)
	// Output:
	// true
	// qr: byte 0x61 at offset 2 invalid in numeric mode
}

func ExampleCode_String() {
	cfg := qrencode.DefaultConfig()
	cfg.Level = qrencode.M
	cfg.Border = 1
	c, err := qrencode.Encode("HELLO WORLD", &cfg)
	if err != nil {
		log.Fatalln(err)
	}
	// Light on dark, for terminals with dark backgrounds.
	c.Reverse = true
	fmt.Print(c)
	// Output:
	// █▀▀▀▀▀▀▀███▀█▀█▀▀▀▀▀▀▀█
	// █ █▀▀▀█ █▄▄ █▀█ █▀▀▀█ █
	// █ █   █ █▀█ ▀ █ █   █ █
	// █ ▀▀▀▀▀ █▀▄ ▄▀█ ▀▀▀▀▀ █
	// █▀█▀█▀█▀██▀██▀███▀██▀██
	// ██▄▄  ▀▀▀ ▀█ ██▀█ ▀██▄█
	// █▄ ▄▄▀ ▀ ▄▀█ ▄▄▀ ▀▄ ▄▀█
	// █▀▀▀▀▀▀▀█▄█▄█▀█▄▀█▀ █▄█
	// █ █▀▀▀█ █▀ ▄█▀█  ▀ ▀▀▀█
	// █ █   █ █▀▀  █ ▀ █▀█▄▀█
	// █ ▀▀▀▀▀ █▀▀█ ▄ ▀▀█▄█▄ █
	// ███████████████████████
}

func ExampleCode_EncodeSVG() {
	c, err := qrencode.Encode("HELLO WORLD", nil)
	if err != nil {
		log.Fatalln(err)
	}
	if err := c.EncodeSVG(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
