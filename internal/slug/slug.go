// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug and object-key-safe filename
// generation from arbitrary strings.
package slug

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// unsafeFilename matches characters that don't belong in an object key.
	unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Filename sanitizes an uploaded file's name for use in an object storage
// key, keeping the extension. Path separators and shell-unfriendly
// characters become underscores; an empty result falls back to "file".
// Example: "My Logo (final).PNG" → "My_Logo__final_.PNG"
func Filename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = unsafeFilename.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}
