// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"
)

// AssetCategory is one of the fixed brand-asset buckets a project file can
// be filed under. The set is closed; uploads must target one of these.
type AssetCategory string

const (
	AssetCategoryLogos      AssetCategory = "logos"
	AssetCategoryBrandmarks AssetCategory = "brandmarks"
	AssetCategoryTypography AssetCategory = "typography"
	AssetCategoryColors     AssetCategory = "colors"
	AssetCategoryGuidelines AssetCategory = "guidelines"
	AssetCategoryTemplates  AssetCategory = "templates"
	AssetCategoryOther      AssetCategory = "other"
)

// AssetCategories lists every valid category in display order.
var AssetCategories = []AssetCategory{
	AssetCategoryLogos,
	AssetCategoryBrandmarks,
	AssetCategoryTypography,
	AssetCategoryColors,
	AssetCategoryGuidelines,
	AssetCategoryTemplates,
	AssetCategoryOther,
}

// ValidAssetCategory reports whether s names one of the fixed categories.
func ValidAssetCategory(s string) bool {
	for _, c := range AssetCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// AssetRecord is the metadata for one uploaded brand file. The bytes live
// in object storage under Path; URL is the public address clients load.
// Deletion matches the list entry by URL and the stored object by Path.
type AssetRecord struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`      // MIME type
	FileType   string    `json:"file_type"` // category it was filed under
	Path       string    `json:"path"`      // object storage key
	UploadedAt time.Time `json:"uploaded_at"`
}

// IsImage returns true if the asset is an image type.
func (a *AssetRecord) IsImage() bool {
	return strings.HasPrefix(a.Type, "image/")
}

// HumanSizeBytes formats n as a human-readable size string.
func HumanSizeBytes(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.0f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
