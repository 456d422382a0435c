// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets implements the brand-asset upload pipeline: per-category
// file validation and the two-phase pending/confirm flow that keeps object
// storage writes separate from metadata commits.
package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	"brandkit/internal/models"
)

// MaxAssetSize caps a single brand-asset upload (25 MB).
const MaxAssetSize = 25 << 20

// categoryRules pairs a MIME whitelist with extension overrides. Design
// formats like EPS and AI are regularly reported by browsers with a
// generic or missing MIME type, so the extension list accepts them even
// when the content type is useless.
type categoryRules struct {
	mimeTypes  map[string]bool
	extensions map[string]bool
}

var imageMimes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// rules defines what each category accepts. The category set is closed;
// an upload must target one of these.
var rules = map[models.AssetCategory]categoryRules{
	models.AssetCategoryLogos: {
		mimeTypes: merge(imageMimes, map[string]bool{
			"application/pdf":         true,
			"application/postscript":  true,
			"application/illustrator": true,
		}),
		extensions: set(".eps", ".ai", ".svg"),
	},
	models.AssetCategoryBrandmarks: {
		mimeTypes: merge(imageMimes, map[string]bool{
			"application/pdf":         true,
			"application/postscript":  true,
			"application/illustrator": true,
		}),
		extensions: set(".eps", ".ai", ".svg"),
	},
	models.AssetCategoryTypography: {
		mimeTypes: map[string]bool{
			"font/ttf":                      true,
			"font/otf":                      true,
			"font/woff":                     true,
			"font/woff2":                    true,
			"application/font-woff":         true,
			"application/x-font-ttf":        true,
			"application/x-font-opentype":   true,
			"application/vnd.ms-fontobject": true,
		},
		extensions: set(".ttf", ".otf", ".woff", ".woff2"),
	},
	models.AssetCategoryColors: {
		mimeTypes: merge(imageMimes, map[string]bool{
			"application/pdf": true,
		}),
		extensions: set(".ase", ".aco"),
	},
	models.AssetCategoryGuidelines: {
		mimeTypes: merge(imageMimes, map[string]bool{
			"application/pdf": true,
		}),
		extensions: set(".indd", ".idml"),
	},
	models.AssetCategoryTemplates: {
		mimeTypes: merge(imageMimes, map[string]bool{
			"application/pdf": true,
			"application/zip": true,
		}),
		extensions: set(".psd", ".ai", ".indd", ".sketch", ".fig"),
	},
	models.AssetCategoryOther: {
		mimeTypes: merge(imageMimes, map[string]bool{
			"application/pdf": true,
			"application/zip": true,
			"text/plain":      true,
		}),
		extensions: set(".eps", ".ai", ".psd", ".zip"),
	},
}

// FileInfo describes one file offered for upload, before any bytes move.
type FileInfo struct {
	Name        string
	ContentType string
	Size        int64
}

// FileErrors aggregates everything wrong with one file. Size and type
// problems are reported separately and may both fire.
type FileErrors struct {
	Name   string   `json:"name"`
	Errors []string `json:"errors"`
}

// Partition is the result of validating a batch: files cleared for upload
// and files rejected with their reasons.
type Partition struct {
	Valid   []FileInfo
	Invalid []FileErrors
}

// TypeAllowed reports whether a file is acceptable for the category, by
// MIME whitelist or extension override.
func TypeAllowed(cat models.AssetCategory, name, contentType string) bool {
	r, ok := rules[cat]
	if !ok {
		return false
	}
	if r.mimeTypes[strings.ToLower(contentType)] {
		return true
	}
	return r.extensions[strings.ToLower(filepath.Ext(name))]
}

// ValidateFile returns everything wrong with one file for the chosen
// category, or nil when it is cleared for upload. Size and type are both
// checked so the caller can report complete errors.
func ValidateFile(cat models.AssetCategory, f FileInfo) []string {
	var errs []string
	if f.Size > MaxAssetSize {
		errs = append(errs, fmt.Sprintf("%s is too large (%s), maximum size is 25 MB",
			f.Name, models.HumanSizeBytes(f.Size)))
	}
	if !TypeAllowed(cat, f.Name, f.ContentType) {
		errs = append(errs, fmt.Sprintf("%s is not an accepted file type for %s", f.Name, cat))
	}
	return errs
}

// ValidateBatch partitions a batch of files into valid and invalid for the
// chosen category. Each entry is judged on its own, by position: two files
// sharing a name do not share a verdict, and one bad file never blocks its
// siblings.
func ValidateBatch(cat models.AssetCategory, files []FileInfo) Partition {
	var p Partition
	for _, f := range files {
		if errs := ValidateFile(cat, f); len(errs) > 0 {
			p.Invalid = append(p.Invalid, FileErrors{Name: f.Name, Errors: errs})
			continue
		}
		p.Valid = append(p.Valid, f)
	}
	return p
}

func set(exts ...string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[e] = true
	}
	return m
}

func merge(a, b map[string]bool) map[string]bool {
	m := make(map[string]bool, len(a)+len(b))
	for k := range a {
		m[k] = true
	}
	for k := range b {
		m[k] = true
	}
	return m
}
