// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// rgb maps colour names to colours.
var rgb = map[string]rgba{
	"none":        {0x00, 0x00, 0x00, 0x00},
	"transparent": {0x00, 0x00, 0x00, 0x00},
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"gray":        {0xbe, 0xbe, 0xbe, 0xff},
	"grey":        {0xbe, 0xbe, 0xbe, 0xff},
	"darkgray":    {0xa9, 0xa9, 0xa9, 0xff},
	"darkgrey":    {0xa9, 0xa9, 0xa9, 0xff},
	"lightgray":   {0xd3, 0xd3, 0xd3, 0xff},
	"lightgrey":   {0xd3, 0xd3, 0xd3, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"darkred":     {0x8b, 0x00, 0x00, 0xff},
	"green":       {0x00, 0xff, 0x00, 0xff},
	"darkgreen":   {0x00, 0x64, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"darkblue":    {0x00, 0x00, 0x8b, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"navyblue":    {0x00, 0x00, 0x80, 0xff},
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"magenta":     {0xff, 0x00, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"purple":      {0xa0, 0x20, 0xf0, 0xff},
	"brown":       {0xa5, 0x2a, 0x2a, 0xff},
	"pink":        {0xff, 0xc0, 0xcb, 0xff},
	"gold":        {0xff, 0xd7, 0x00, 0xff},
	"maroon":      {0xb0, 0x30, 0x60, 0xff},
	"olive":       {0x80, 0x80, 0x00, 0xff},
	"teal":        {0x00, 0x80, 0x80, 0xff},
	"indigo":      {0x4b, 0x00, 0x82, 0xff},
	"violet":      {0xee, 0x82, 0xee, 0xff},
}
