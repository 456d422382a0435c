// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"brandkit/internal/fontpreview"
	"brandkit/internal/imaging"
	"brandkit/internal/models"
	"brandkit/internal/storage"
)

const (
	// maxFontSize caps an uploaded font file (10 MB).
	maxFontSize = 10 << 20

	// maxLogoSize caps an uploaded logo (10 MB).
	maxLogoSize = 10 << 20

	// maxNarrativeLen caps each Markdown narrative field.
	maxNarrativeLen = 50_000

	// presignExpiry is how long a font download link stays valid.
	presignExpiry = 1 * time.Hour
)

// guidelinesPayload is the request body for saving a guidelines document.
// The whole document is replaced; RGB/CMYK values in the payload are
// ignored and re-derived from each hex.
type guidelinesPayload struct {
	LogoURL    string              `json:"logo_url"`
	Colors     []models.BrandColor `json:"colors"`
	Fonts      []models.BrandFont  `json:"fonts"`
	BrandStory string              `json:"brand_story"`
	VoiceTone  string              `json:"voice_tone"`
	UsageNotes string              `json:"usage_notes"`
}

// GuidelinesGet returns a project's brand guidelines document, or an empty
// skeleton if none has been saved yet.
func (a *API) GuidelinesGet(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	g, err := a.guidelinesStore.Get(project.ID)
	if err != nil {
		slog.Error("guidelines get failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load guidelines.", http.StatusInternalServerError)
		return
	}
	if g == nil {
		g = &models.BrandGuidelines{
			ProjectID: project.ID,
			Colors:    []models.BrandColor{},
			Fonts:     []models.BrandFont{},
		}
	}
	writeJSON(w, http.StatusOK, g)
}

// GuidelinesPut saves a project's guidelines document. Last write wins;
// colors come back with RGB and CMYK derived from their hex values.
func (a *API) GuidelinesPut(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	var payload guidelinesPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	for _, field := range []string{payload.BrandStory, payload.VoiceTone, payload.UsageNotes} {
		if len(field) > maxNarrativeLen {
			writeError(w, "Narrative text is too long (max 50,000 characters).", http.StatusBadRequest)
			return
		}
	}

	g := &models.BrandGuidelines{
		ProjectID:  project.ID,
		LogoURL:    strings.TrimSpace(payload.LogoURL),
		Colors:     payload.Colors,
		Fonts:      payload.Fonts,
		BrandStory: payload.BrandStory,
		VoiceTone:  payload.VoiceTone,
		UsageNotes: payload.UsageNotes,
	}
	if g.Colors == nil {
		g.Colors = []models.BrandColor{}
	}
	if g.Fonts == nil {
		g.Fonts = []models.BrandFont{}
	}

	if err := a.guidelinesStore.Put(g); err != nil {
		slog.Error("guidelines put failed", "error", err, "project", project.ID)
		writeError(w, "Failed to save guidelines.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// GuidelinesFontUpload accepts a TTF/OTF font file, stores it, renders a
// PNG preview of sample text, and appends the font to the guidelines
// document. The family name is read from the font itself unless a name is
// provided in the form.
func (a *API) GuidelinesFontUpload(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFontSize+1024)
	if err := r.ParseMultipartForm(maxFontSize); err != nil {
		writeError(w, "Font file too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	// Parse before storing anything — rejects non-font uploads outright.
	family, err := fontpreview.FamilyName(data)
	if err != nil {
		writeError(w, "That file is not a readable TTF or OTF font.", http.StatusBadRequest)
		return
	}
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		family = name
	}

	preview, err := fontpreview.Render(data, r.FormValue("sample"))
	if err != nil {
		slog.Error("font preview render failed", "error", err, "project", project.ID)
		writeError(w, "Failed to render the font preview.", http.StatusInternalServerError)
		return
	}

	fontType := "font/ttf"
	if strings.HasSuffix(strings.ToLower(header.Filename), ".otf") {
		fontType = "font/otf"
	}

	// The font file itself is licensed material: it goes to the private
	// bucket and is only served through short-lived presigned links. The
	// rendered preview carries no license risk and stays public.
	ctx := r.Context()
	fontKey := storage.AssetKey(project.ID, string(models.AssetCategoryTypography), header.Filename)
	if err := a.storageClient.Upload(ctx, a.storageClient.PrivateBucket(), fontKey, fontType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("font upload failed", "error", err, "key", fontKey)
		writeError(w, "Failed to store the font.", http.StatusInternalServerError)
		return
	}
	previewKey := fontKey + ".preview.png"
	if err := a.storageClient.Upload(ctx, a.storageClient.PublicBucket(), previewKey, "image/png", bytes.NewReader(preview), int64(len(preview))); err != nil {
		slog.Error("font preview upload failed", "error", err, "key", previewKey)
		writeError(w, "Failed to store the font preview.", http.StatusInternalServerError)
		return
	}

	font := models.BrandFont{
		Name:       family,
		Usage:      strings.TrimSpace(r.FormValue("usage")),
		FilePath:   fontKey,
		PreviewURL: a.storageClient.FileURL(previewKey),
	}

	// Merge into the existing document rather than replacing it.
	g, err := a.guidelinesStore.Get(project.ID)
	if err != nil {
		slog.Error("guidelines get failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load guidelines.", http.StatusInternalServerError)
		return
	}
	if g == nil {
		g = &models.BrandGuidelines{ProjectID: project.ID}
	}
	g.Fonts = append(g.Fonts, font)
	if err := a.guidelinesStore.Put(g); err != nil {
		slog.Error("guidelines put failed", "error", err, "project", project.ID)
		writeError(w, "Failed to save guidelines.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, font)
}

// fontKeyForProject checks that path names a typography object belonging
// to the project. Keys are prefix-scoped, so a session can never be handed
// another project's files.
func fontKeyForProject(projectID uuid.UUID, path string) (string, bool) {
	prefix := fmt.Sprintf("projects/%s/%s/", projectID, models.AssetCategoryTypography)
	if !strings.HasPrefix(path, prefix) || strings.Contains(path, "..") {
		return "", false
	}
	return path, true
}

// GuidelinesFontLink issues a presigned download URL for a stored font
// file. Fonts sit in the private bucket, so this link is the only way to
// fetch the bytes; it expires after an hour.
func (a *API) GuidelinesFontLink(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	key, ok := fontKeyForProject(project.ID, strings.TrimSpace(r.URL.Query().Get("path")))
	if !ok {
		writeError(w, "Unknown font file.", http.StatusNotFound)
		return
	}

	url, err := a.storageClient.PresignedURL(r.Context(), a.storageClient.PrivateBucket(), key, presignExpiry)
	if err != nil {
		slog.Error("font presign failed", "error", err, "key", key)
		writeError(w, "Failed to create the download link.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":        url,
		"expires_at": time.Now().UTC().Add(presignExpiry).Format(time.RFC3339),
	})
}

// GuidelinesFontPreview renders sample text in a stored font and returns
// the PNG, so the designer can try preview copy without re-uploading the
// font file.
func (a *API) GuidelinesFontPreview(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	var payload struct {
		Path   string `json:"path"`
		Sample string `json:"sample"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	key, ok := fontKeyForProject(project.ID, strings.TrimSpace(payload.Path))
	if !ok {
		writeError(w, "Unknown font file.", http.StatusNotFound)
		return
	}

	data, err := a.storageClient.Download(r.Context(), a.storageClient.PrivateBucket(), key)
	if err != nil {
		slog.Error("font download failed", "error", err, "key", key)
		writeError(w, "Failed to load the font file.", http.StatusInternalServerError)
		return
	}
	png, err := fontpreview.Render(data, payload.Sample)
	if err != nil {
		slog.Error("font preview render failed", "error", err, "key", key)
		writeError(w, "Failed to render the font preview.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GuidelinesLogoUpload stores a project logo, generates a thumbnail for
// large raster images, and records the logo URL on the document.
func (a *API) GuidelinesLogoUpload(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoSize+1024)
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		writeError(w, "Logo too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	contentType := http.DetectContentType(data[:min(len(data), 512)])
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, "The logo must be an image.", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	bucket := a.storageClient.PublicBucket()
	key := storage.AssetKey(project.ID, string(models.AssetCategoryLogos), header.Filename)
	if err := a.storageClient.Upload(ctx, bucket, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("logo upload failed", "error", err, "key", key)
		writeError(w, "Failed to store the logo.", http.StatusInternalServerError)
		return
	}

	var thumbURL string
	if imaging.ThumbableTypes[contentType] {
		thumb, err := imaging.Thumbnail(data, imaging.ThumbMaxWidth)
		if err != nil {
			slog.Warn("logo thumbnail failed", "error", err, "key", key)
		} else if thumb != nil {
			thumbKey := key + ".thumb.jpg"
			if err := a.storageClient.Upload(ctx, bucket, thumbKey, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
				slog.Warn("logo thumbnail upload failed", "error", err, "key", thumbKey)
			} else {
				thumbURL = a.storageClient.FileURL(thumbKey)
			}
		}
	}

	url := a.storageClient.FileURL(key)
	g, err := a.guidelinesStore.Get(project.ID)
	if err != nil {
		slog.Error("guidelines get failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load guidelines.", http.StatusInternalServerError)
		return
	}
	if g == nil {
		g = &models.BrandGuidelines{ProjectID: project.ID}
	}
	g.LogoURL = url
	if err := a.guidelinesStore.Put(g); err != nil {
		slog.Error("guidelines put failed", "error", err, "project", project.ID)
		writeError(w, "Failed to save guidelines.", http.StatusInternalServerError)
		return
	}

	resp := map[string]string{"url": url, "uploaded_at": time.Now().UTC().Format(time.RFC3339)}
	if thumbURL != "" {
		resp["thumb_url"] = thumbURL
	}
	writeJSON(w, http.StatusCreated, resp)
}
