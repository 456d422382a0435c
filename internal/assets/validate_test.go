package assets

import (
	"strings"
	"testing"

	"brandkit/internal/models"
)

// TestTypeAllowedExtensionOverride verifies that design formats reported
// with a generic MIME type are accepted by extension.
func TestTypeAllowedExtensionOverride(t *testing.T) {
	tests := []struct {
		name        string
		cat         models.AssetCategory
		file        string
		contentType string
		want        bool
	}{
		{name: "eps with generic mime", cat: models.AssetCategoryLogos, file: "logo.eps", contentType: "application/octet-stream", want: true},
		{name: "ai with empty mime", cat: models.AssetCategoryLogos, file: "logo.ai", contentType: "", want: true},
		{name: "uppercase extension", cat: models.AssetCategoryLogos, file: "LOGO.EPS", contentType: "application/octet-stream", want: true},
		{name: "png by mime", cat: models.AssetCategoryLogos, file: "logo.png", contentType: "image/png", want: true},
		{name: "exe rejected", cat: models.AssetCategoryLogos, file: "logo.exe", contentType: "application/octet-stream", want: false},
		{name: "ttf for typography", cat: models.AssetCategoryTypography, file: "font.ttf", contentType: "font/ttf", want: true},
		{name: "woff2 by extension", cat: models.AssetCategoryTypography, file: "font.woff2", contentType: "application/octet-stream", want: true},
		{name: "png not a font", cat: models.AssetCategoryTypography, file: "font.png", contentType: "image/png", want: false},
		{name: "swatch file for colors", cat: models.AssetCategoryColors, file: "palette.ase", contentType: "application/octet-stream", want: true},
		{name: "unknown category", cat: models.AssetCategory("bogus"), file: "a.png", contentType: "image/png", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeAllowed(tt.cat, tt.file, tt.contentType)
			if got != tt.want {
				t.Errorf("TypeAllowed(%s, %q, %q) = %v, want %v",
					tt.cat, tt.file, tt.contentType, got, tt.want)
			}
		})
	}
}

// TestValidateBatchPartition verifies the valid/invalid split with
// per-file error aggregation.
func TestValidateBatchPartition(t *testing.T) {
	files := []FileInfo{
		{Name: "good.png", ContentType: "image/png", Size: 1 << 20},
		{Name: "huge.png", ContentType: "image/png", Size: 30 << 20},
		{Name: "bad.exe", ContentType: "application/octet-stream", Size: 1 << 20},
		{Name: "huge-and-bad.exe", ContentType: "application/octet-stream", Size: 30 << 20},
		{Name: "vector.eps", ContentType: "application/octet-stream", Size: 2 << 20},
	}

	p := ValidateBatch(models.AssetCategoryLogos, files)

	if len(p.Valid) != 2 {
		t.Fatalf("valid = %+v, want good.png and vector.eps", p.Valid)
	}
	if p.Valid[0].Name != "good.png" || p.Valid[1].Name != "vector.eps" {
		t.Errorf("valid files out of order: %+v", p.Valid)
	}

	if len(p.Invalid) != 3 {
		t.Fatalf("invalid = %+v, want 3 entries", p.Invalid)
	}

	byName := make(map[string]FileErrors)
	for _, fe := range p.Invalid {
		byName[fe.Name] = fe
	}

	// A 30MB file must be rejected on size alone and never reach storage.
	if errs := byName["huge.png"].Errors; len(errs) != 1 || !strings.Contains(errs[0], "too large") {
		t.Errorf("huge.png errors = %v, want a single size error", errs)
	}
	if errs := byName["bad.exe"].Errors; len(errs) != 1 || !strings.Contains(errs[0], "not an accepted file type") {
		t.Errorf("bad.exe errors = %v, want a single type error", errs)
	}
	// Both problems fire for the same file.
	if errs := byName["huge-and-bad.exe"].Errors; len(errs) != 2 {
		t.Errorf("huge-and-bad.exe errors = %v, want both size and type errors", errs)
	}
}

// TestValidateFilePerEntry verifies each file is judged on its own, so
// two batch entries sharing a filename get independent verdicts.
func TestValidateFilePerEntry(t *testing.T) {
	good := FileInfo{Name: "logo.png", ContentType: "image/png", Size: 1 << 20}
	bad := FileInfo{Name: "logo.png", ContentType: "image/png", Size: 30 << 20}

	if errs := ValidateFile(models.AssetCategoryLogos, good); errs != nil {
		t.Errorf("good file rejected: %v", errs)
	}
	if errs := ValidateFile(models.AssetCategoryLogos, bad); len(errs) != 1 || !strings.Contains(errs[0], "too large") {
		t.Errorf("oversize twin errors = %v, want a single size error", errs)
	}

	p := ValidateBatch(models.AssetCategoryLogos, []FileInfo{good, bad})
	if len(p.Valid) != 1 || len(p.Invalid) != 1 {
		t.Errorf("partition = %+v, want one valid and one invalid despite the shared name", p)
	}
}

// TestValidateBatchAtLimit verifies the 25MB boundary is inclusive.
func TestValidateBatchAtLimit(t *testing.T) {
	p := ValidateBatch(models.AssetCategoryLogos, []FileInfo{
		{Name: "exact.png", ContentType: "image/png", Size: MaxAssetSize},
	})
	if len(p.Valid) != 1 || len(p.Invalid) != 0 {
		t.Errorf("file at exactly the size limit must pass: %+v", p)
	}
}

// TestPendingRecord verifies conversion of a pending entry into a
// committed asset record.
func TestPendingRecord(t *testing.T) {
	p := PendingUpload{
		Name:     "logo.png",
		URL:      "https://cdn.example.com/projects/x/logos/logo.png",
		Type:     "image/png",
		Category: models.AssetCategoryLogos,
		Path:     "projects/x/logos/logo.png",
	}
	rec := p.Record()
	if rec.FileType != "logos" {
		t.Errorf("FileType = %q, want %q", rec.FileType, "logos")
	}
	if rec.URL != p.URL || rec.Path != p.Path || rec.Name != p.Name || rec.Type != p.Type {
		t.Errorf("Record() dropped fields: %+v", rec)
	}
}
