// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"brandkit/internal/colorspace"
)

// BrandColor is one palette entry in a guidelines document. RGB and CMYK
// are derived from Hex and must never go stale: they are recomputed on
// every write and backfilled on read for legacy records that only stored
// the hex value.
type BrandColor struct {
	Hex  string           `json:"hex"`
	Name string           `json:"name"`
	RGB  *colorspace.RGB  `json:"rgb,omitempty"`
	CMYK *colorspace.CMYK `json:"cmyk,omitempty"`
}

// DeriveSpaces recomputes the RGB and CMYK components from Hex,
// overwriting whatever was stored. An unparseable hex clears both so a bad
// value is never presented with stale channels.
func (c *BrandColor) DeriveSpaces() {
	rgb, cmyk, err := colorspace.Derive(c.Hex)
	if err != nil {
		c.RGB = nil
		c.CMYK = nil
		return
	}
	c.RGB = &rgb
	c.CMYK = &cmyk
}

// BrandFont describes one typeface in the guidelines: the uploaded font
// file plus a rendered PNG preview of sample text. The font file lives in
// the private bucket under FilePath and is downloaded through presigned
// links only; the preview is public.
type BrandFont struct {
	Name       string `json:"name"`
	Usage      string `json:"usage,omitempty"` // e.g. "headings", "body"
	FilePath   string `json:"file_path"`       // private object storage key
	PreviewURL string `json:"preview_url,omitempty"`
}

// BrandGuidelines is a project's style reference document. It is authored
// by the designer, mutated merge-on-write, and rendered read-only for
// clients and the public share page. Narrative fields are Markdown.
type BrandGuidelines struct {
	ProjectID  uuid.UUID    `json:"project_id"`
	LogoURL    string       `json:"logo_url,omitempty"`
	Colors     []BrandColor `json:"colors"`
	Fonts      []BrandFont  `json:"fonts"`
	BrandStory string       `json:"brand_story,omitempty"`
	VoiceTone  string       `json:"voice_tone,omitempty"`
	UsageNotes string       `json:"usage_notes,omitempty"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// DeriveColors recomputes color spaces for every palette entry. Called on
// every write, and on read to backfill documents saved before RGB/CMYK
// were stored.
func (g *BrandGuidelines) DeriveColors() {
	for i := range g.Colors {
		g.Colors[i].DeriveSpaces()
	}
}
