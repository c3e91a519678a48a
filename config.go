// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode

import (
	"image/color"
	"log/slog"

	"github.com/unixdj/qrencode/coding"
	"github.com/unixdj/qrencode/split"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// ParseLevel parses a level name, one of "L", "M", "Q" and "H",
// ignoring case.
func ParseLevel(s string) (Level, bool) {
	return coding.ParseLevel(s)
}

// A Mode forces a single segment encoding mode for the whole text.
type Mode int

const (
	ModeAuto         Mode = iota // split text into segments
	ModeNumeric                  // digits only
	ModeAlphanumeric             // digits, upper case letters, " $%*+-./:"
	ModeByte                     // any bytes
	ModeKanji                    // Shift JIS double byte characters
)

var modeNames = [...]string{"auto", "numeric", "alphanumeric", "byte", "kanji"}

func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return "invalid"
}

// IsValid reports whether m is a defined Mode.
func (m Mode) IsValid() bool {
	return ModeAuto <= m && m <= ModeKanji
}

// coding returns the segment mode forced by m.
func (m Mode) coding() coding.Mode {
	return [...]coding.Mode{
		ModeNumeric:      coding.Numeric,
		ModeAlphanumeric: coding.Alphanumeric,
		ModeByte:         coding.Byte,
		ModeKanji:        coding.Kanji,
	}[m]
}

// A MaskPolicy selects the mask patterns evaluated.
type MaskPolicy = coding.MaskPolicy

// NumMasks is the number of mask patterns.
const NumMasks = coding.NumMasks

// Mask policies.
var (
	BestMask    = coding.BestMask
	FixedMask   = coding.FixedMask
	SampledMask = coding.SampledMask
)

// A Strategy is a segmentation algorithm.
type Strategy = split.Strategy

const (
	Heuristic = split.Heuristic // greedy scan with cost comparison
	Optimal   = split.Optimal   // cheapest chain over spans
)

// Rendering defaults and limits.
const (
	DefaultScale  = 3 // image pixels per module
	DefaultBorder = 4 // quiet zone modules
	MaxScale      = 1 << 10
	MaxBorder     = 1 << 8
)

// Config controls encoding and rendering.  The zero Config encodes at
// level L with automatic segmentation, the best mask, DefaultScale
// and no quiet zone.
type Config struct {
	Level Level // error correction level

	// Mode, unless ModeAuto, encodes the whole text as a single
	// segment in the given mode.
	Mode Mode

	// Kanji enables kanji mode segments for Shift JIS double byte
	// characters in automatic segmentation.
	Kanji bool

	// CaseInsensitive converts ASCII letters to upper case before
	// segmentation, making them encodable in alphanumeric mode.
	CaseInsensitive bool

	Segmenter Strategy   // automatic segmentation algorithm
	Mask      MaskPolicy // mask selection, BestMask by default
	Workers   int        // concurrent mask evaluations; 0 or 1 serial

	Scale      int         // image pixels per module; 0 for DefaultScale
	Border     int         // quiet zone width in modules
	Foreground color.Color // dark module colour; nil for black
	Background color.Color // light module colour; nil for white

	Logger *slog.Logger // debug tracing; nil discards
}

// DefaultConfig returns the default configuration: level L, automatic
// segmentation, the best mask, DefaultScale and DefaultBorder.
func DefaultConfig() Config {
	return Config{
		Level:  L,
		Scale:  DefaultScale,
		Border: DefaultBorder,
	}
}

// Validate returns a *ConfigError for the first invalid field of c.
func (c *Config) Validate() error {
	switch {
	case !c.Level.IsValid():
		return &ConfigError{"level", c.Level}
	case !c.Mode.IsValid():
		return &ConfigError{"mode", c.Mode}
	case !c.Segmenter.IsValid():
		return &ConfigError{"segmenter", c.Segmenter}
	case !c.Mask.IsValid():
		return &ConfigError{"mask", c.Mask}
	case c.Workers < 0:
		return &ConfigError{"workers", c.Workers}
	case c.Scale < 0 || c.Scale > MaxScale:
		return &ConfigError{"scale", c.Scale}
	case c.Border < 0 || c.Border > MaxBorder:
		return &ConfigError{"border", c.Border}
	}
	return nil
}

func (c *Config) scale() int {
	if c.Scale == 0 {
		return DefaultScale
	}
	return c.Scale
}

func (c *Config) palette() *[2]color.Color {
	if c.Foreground == nil && c.Background == nil {
		return nil
	}
	p := [2]color.Color{color.White, color.Black}
	if c.Background != nil {
		p[0] = c.Background
	}
	if c.Foreground != nil {
		p[1] = c.Foreground
	}
	return &p
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
