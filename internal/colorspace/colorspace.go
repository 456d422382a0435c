// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package colorspace converts hex color strings into RGB and CMYK
// components for brand palette entries. Conversions are deterministic and
// pure; stored components are always recomputed from the hex value, never
// edited independently.
package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB holds 8-bit color channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// CMYK holds print channels as integer percentages in [0,100].
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// HexToRGB parses a hex color string into RGB components. Both 6-digit
// ("#1a2b3c") and 3-digit shorthand ("#abc", expanded by doubling each
// nibble) forms are accepted, with or without the leading "#".
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(h) {
	case 3:
		// Expand shorthand: "abc" -> "aabbcc".
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", hex)
	}

	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// RGBToCMYK converts RGB channels to CMYK integer percentages. Pure black
// is special-cased to {0,0,0,100} so the rescale below never divides by
// zero.
func RGBToCMYK(rgb RGB) CMYK {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	c := 1 - r
	m := 1 - g
	y := 1 - b

	k := math.Min(c, math.Min(m, y))
	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	return CMYK{
		C: pct((c - k) / (1 - k)),
		M: pct((m - k) / (1 - k)),
		Y: pct((y - k) / (1 - k)),
		K: pct(k),
	}
}

// Derive computes both RGB and CMYK for a hex color in one call.
func Derive(hex string) (RGB, CMYK, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return RGB{}, CMYK{}, err
	}
	return rgb, RGBToCMYK(rgb), nil
}

// pct rounds a [0,1] fraction to an integer percentage.
func pct(f float64) int {
	return int(math.Round(f * 100))
}
