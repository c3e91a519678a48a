// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrencode encodes QR codes.

Encode splits text into numeric, alphanumeric, byte and optionally
kanji segments, chooses the smallest version holding them at the
requested error correction level, and returns the masked module grid
as a Code.  A Code renders itself as PNG, PBM, SVG, text and
image.Image.

Text is encoded as is.  Byte mode segments are conventionally
ISO 8859-1, kanji mode segments Shift JIS; see Latin1 and ShiftJIS.
*/
package qrencode // import "github.com/unixdj/qrencode"

import (
	"context"
	"errors"
	"log/slog"

	"github.com/unixdj/qrencode/coding"
	"github.com/unixdj/qrencode/split"
)

// Encode returns an encoding of text using cfg, or DefaultConfig if
// cfg is nil.  The returned Code carries cfg's rendering settings.
//
// Encode returns an error matching ErrConfig for an invalid cfg,
// ErrInvalidInput for empty text or text not encodable in a forced
// mode, and ErrCapacity for text too long for version 40.
func Encode(text string, cfg *Config) (*Code, error) {
	if cfg == nil {
		d := DefaultConfig()
		cfg = &d
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()
	if text == "" {
		return nil, ErrEmpty
	}
	if cfg.CaseInsensitive {
		text = split.Upper(text, cfg.Kanji || cfg.Mode == ModeKanji)
	}
	segs, data, v, err := segment(text, cfg, log)
	if err != nil {
		log.Debug("encoding failed", slog.Any("error", err))
		return nil, err
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("segmented",
			slog.Int("version", int(v)),
			slog.String("level", cfg.Level.String()),
			slog.Any("segments", segs))
	}

	cc := coding.EncodeVersion(data, v, cfg.Level, coding.Options{
		Mask:    cfg.Mask,
		Workers: cfg.Workers,
	})
	log.Debug("mask selected",
		slog.String("policy", cfg.Mask.String()),
		slog.Int("mask", cc.Mask),
		slog.Int("penalty", cc.Penalty))

	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Version: cc.Version,
		Level:   cc.Level,
		Mask:    cc.Mask,
		Penalty: cc.Penalty,
		Scale:   cfg.scale(),
		Border:  cfg.Border,
		Palette: cfg.palette(),
	}, nil
}

// segment splits text and builds the padded data codewords.
//
// Header widths depend on the size class, which depends on the
// split.  Text is split for the smallest class first.  If the result
// needs a larger class, or does not fit at all, it is split again for
// the larger class.  The class only grows, so this ends after at most
// three splits.
func segment(text string, cfg *Config, log *slog.Logger) ([]coding.Segment, []byte, Version, error) {
	if cfg.Mode != ModeAuto {
		segs, err := split.Force(text, cfg.Mode.coding())
		if err != nil {
			return nil, nil, 0, err
		}
		data, v, err := coding.BuildBitstream(segs, cfg.Level)
		return segs, data, v, err
	}
	o := split.Options{Kanji: cfg.Kanji, Strategy: cfg.Segmenter}
	for class := coding.Class0; ; {
		segs := split.Split(text, class, o)
		data, v, err := coding.BuildBitstream(segs, cfg.Level)
		switch {
		case errors.Is(err, ErrCapacity) && class < coding.Class2:
			class = coding.Class2
		case err != nil:
			return nil, nil, 0, err
		case v.SizeClass() > class:
			class = v.SizeClass()
		default:
			return segs, data, v, nil
		}
		log.Debug("resplitting", slog.Int("class", class))
	}
}
