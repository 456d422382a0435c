// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fontpreview parses uploaded font files and renders PNG previews
// of sample text for the brand guidelines fonts section.
package fontpreview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultSample is the text rendered when the caller provides none.
	DefaultSample = "Aa Bb Cc 0123456789"

	// previewFontSize is the rendered size in points at 72 DPI.
	previewFontSize = 36

	// Canvas padding around the rendered sample, in pixels.
	previewPadding = 24
)

// FamilyName extracts the font family name from TTF/OTF bytes. Returns an
// error for data that is not a parseable sfnt font.
func FamilyName(data []byte) (string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse font: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("font family name: %w", err)
	}
	return name, nil
}

// Render rasterizes sample text in the given font and returns an encoded
// PNG: black text on white, sized to fit the sample. An empty sample falls
// back to DefaultSample.
func Render(data []byte, sample string) ([]byte, error) {
	if sample == "" {
		sample = DefaultSample
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    previewFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, sample).Ceil() + 2*previewPadding
	height := (metrics.Ascent + metrics.Descent).Ceil() + 2*previewPadding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(previewPadding),
			Y: fixed.I(previewPadding) + metrics.Ascent,
		},
	}
	drawer.DrawString(sample)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}
