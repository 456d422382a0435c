// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wizard

import "fmt"

// MaxSlotImageSize caps uploads into an imageUpload slot (5 MB).
const MaxSlotImageSize = 5 << 20

// slotImageTypes are the MIME types accepted for wizard image slots.
var slotImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateSlotImage checks a file destined for an imageUpload slot before
// any upload is attempted. Each slot is validated independently — one bad
// file must not block its siblings.
func ValidateSlotImage(contentType string, size int64) error {
	if !slotImageTypes[contentType] {
		return fmt.Errorf("file type %q is not allowed, use JPEG or PNG", contentType)
	}
	if size > MaxSlotImageSize {
		return fmt.Errorf("file is too large, maximum size is 5 MB")
	}
	return nil
}
