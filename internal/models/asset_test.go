package models

import "testing"

// TestValidAssetCategory verifies the category set is closed: every listed
// category passes and everything else, including case and whitespace
// variants, is refused.
func TestValidAssetCategory(t *testing.T) {
	for _, c := range AssetCategories {
		if !ValidAssetCategory(string(c)) {
			t.Errorf("ValidAssetCategory(%q) = false, want true", c)
		}
	}

	for _, s := range []string{"", "   ", "Logos", "LOGOS", "logos ", "screenshots", "typo"} {
		if ValidAssetCategory(s) {
			t.Errorf("ValidAssetCategory(%q) = true, want false", s)
		}
	}
}

func TestAssetRecordIsImage(t *testing.T) {
	img := AssetRecord{Type: "image/png"}
	if !img.IsImage() {
		t.Error("image/png should be an image")
	}
	doc := AssetRecord{Type: "application/pdf"}
	if doc.IsImage() {
		t.Error("application/pdf should not be an image")
	}
}
