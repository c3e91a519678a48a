// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr writes a QR code encoding its arguments or standard input.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrencode"
)

// environ holds defaults taken from the environment.
type environ struct {
	Level  string `env:"QR_LEVEL" envDefault:"l"`
	Scale  uint64 `env:"QR_SCALE" envDefault:"4"`
	Margin int    `env:"QR_MARGIN" envDefault:"-1"`
	Type   string `env:"QR_TYPE"`
	Mask   int64  `env:"QR_MASK" envDefault:"-1"`
}

var g = struct {
	cfg     qrencode.Config // encoder configuration
	fn      string          // filename
	format  int             // output file format
	rev     bool            // reverse colours
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	latin1  bool            // convert input to Latin-1
	sjis    bool            // convert input to Shift JIS
	optimal bool            // optimal segmentation
	debug   bool            // debug logging
}{
	cfg: qrencode.DefaultConfig(),
	inc: [2]int{1, 1},
	bg:  rgba{0xff, 0xff, 0xff, 0xff},
	fg:  rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Input is encoded as is, unless -1 or -k is given.
Defaults for -l, -s, -m, -t and -M are taken from QR_LEVEL, QR_SCALE,
QR_MARGIN, QR_TYPE and QR_MASK.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "PNG", "PNGi", "pbm", "pbmi", "svg", "svgi",
	"utf8", "utf8i", "ascii", "asciii", "uri", "urii",
}

var encoders = [...]func(*qrencode.Code, io.Writer) error{
	(*qrencode.Code).EncodePNG,
	func(c *qrencode.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qrencode.Code).EncodePBM,
	(*qrencode.Code).EncodeSVG,
	func(c *qrencode.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	(*qrencode.Code).EncodeASCII,
	func(c *qrencode.Code, w io.Writer) error {
		s, err := c.DataURI()
		if err == nil {
			_, err = fmt.Fprintln(w, s)
		}
		return err
	},
}

func parseFlags() {
	var e environ
	if err := env.Parse(&e); err != nil {
		log.Fatalln(err)
	}
	if _, ok := qrencode.ParseLevel(e.Level); !ok {
		log.Fatalf("QR_LEVEL=%q: bad level", e.Level)
	}
	if e.Type != "" && !slices.Contains(formats, e.Type) {
		log.Fatalf("QR_TYPE=%q: bad type", e.Type)
	}
	if e.Mask < -1 || e.Mask >= qrencode.NumMasks {
		log.Fatalf("QR_MASK=%d: bad mask", e.Mask)
	}
	g.cfg.Border = qrencode.DefaultBorder
	if e.Margin >= 0 {
		g.cfg.Border = e.Margin
	}

	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or colour name; `+
		`ignored for types pbm[i], utf8[i] and ascii[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.sjis, 'k', "convert input from UTF-8 to Shift JIS "+
		"and enable kanji mode")
	byteOnly := getopt.Bool('8', "encode entire data in byte mode")
	getopt.Flag(&g.cfg.Kanji, 'K', "enable kanji mode for Shift JIS input")
	getopt.Flag(&g.cfg.CaseInsensitive, 'i',
		`ignore case, convert letters to uppercase`)
	getopt.Flag(&g.optimal, 'O', "optimal segmentation")
	getopt.Flag(&g.debug, 'd', "log encoding decisions")
	getopt.Flag(&g.cfg.Border, 'm', `quiet zone pixels`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, e.Level,
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', e.Scale,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: qrencode.MaxScale},
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	mask := getopt.Signed('M', e.Mask, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"use the given mask pattern; -1 chooses the best", "mask")
	sample := getopt.Unsigned('R', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 8},
		"choose the best of k random mask patterns", "k")
	workers := getopt.Unsigned('P', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 64},
		"evaluate mask patterns concurrently", "workers")
	ff := getopt.Enum('t', formats, e.Type, `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"png" uses the built in encoder, "PNG" the standard Go one; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if getopt.IsSet('M') && getopt.IsSet('R') {
		fmt.Fprintln(os.Stderr, "-M and -R are incompatible")
		usage()
	}
	if g.latin1 && g.sjis {
		fmt.Fprintln(os.Stderr, "-1 and -k are incompatible")
		usage()
	}
	c := &g.cfg
	c.Level, _ = qrencode.ParseLevel(*lev)
	c.Scale = int(*scale)
	switch {
	case *mask >= 0:
		c.Mask = qrencode.FixedMask(int(*mask))
	case *sample > 0:
		c.Mask = qrencode.SampledMask(int(*sample), rand.Uint64())
	}
	c.Workers = int(*workers)
	if *byteOnly {
		c.Mode = qrencode.ModeByte
	}
	if g.sjis {
		c.Kanji = true
	}
	if g.optimal {
		c.Segmenter = qrencode.Optimal
	}
	lvl := slog.LevelInfo
	if g.debug {
		lvl = slog.LevelDebug
	}
	c.Logger = slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: lvl}))
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	i := slices.Index(formats, *ff)
	g.format = i >> 1
	g.rev = i&1 != 0
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		c.Background, c.Foreground = color.RGBA(g.bg), color.RGBA(g.fg)
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	var err error
	switch {
	case g.latin1:
		s, err = qrencode.Latin1(s)
	case g.sjis:
		s, err = qrencode.ShiftJIS(s)
	}
	if err != nil {
		log.Fatalln(err)
	}

	c, err := qrencode.Encode(s, &g.cfg)
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

func write(c *qrencode.Code) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c = randr(c)
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// randr rotates and reflects c.
func randr(c *qrencode.Code) *qrencode.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	siz := c.Size
	stride := (siz + 7) / 8
	b := make([]byte, stride*siz)
	var coord [2]int
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		row := b[y*stride:]
		for x := 0; x < siz; x++ {
			if c.Black(coord[0], coord[1]) {
				row[x/8] |= 0x80 >> uint(x&7)
			}
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	c.Bitmap = b
	c.Stride = stride
	return c
}
