// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandkit/internal/assets"
	"brandkit/internal/models"
	"brandkit/internal/storage"
)

// maxAssetBatch caps how many files one upload request may carry.
const maxAssetBatch = 20

// AssetUpload accepts a multipart batch of brand files for one category.
// Valid files go to object storage immediately and are parked as pending;
// nothing lands in the project's file lists until the batch is confirmed.
// One bad file never blocks its siblings — per-file errors come back
// alongside the accepted uploads.
func (a *API) AssetUpload(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	category := models.AssetCategory(chi.URLParam(r, "category"))
	if !models.ValidAssetCategory(string(category)) {
		writeError(w, "Unknown asset category.", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAssetBatch*assets.MaxAssetSize+1024)
	if err := r.ParseMultipartForm(assets.MaxAssetSize); err != nil {
		writeError(w, "Upload too large.", http.StatusRequestEntityTooLarge)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		writeError(w, "No files provided.", http.StatusBadRequest)
		return
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) > maxAssetBatch {
		writeError(w, "Too many files in one batch (max 20).", http.StatusBadRequest)
		return
	}

	// Each header is validated in place, so duplicate filenames in one
	// batch are judged independently and rejects cost no storage writes.
	var uploaded []assets.PendingUpload
	var failures []assets.FileErrors
	for _, h := range headers {
		info := assets.FileInfo{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Size:        h.Size,
		}
		if errs := assets.ValidateFile(category, info); len(errs) > 0 {
			failures = append(failures, assets.FileErrors{Name: h.Filename, Errors: errs})
			continue
		}

		entry, err := a.uploadAssetFile(r, project.ID, category, h)
		if err != nil {
			slog.Error("asset upload failed", "error", err, "project", project.ID, "file", h.Filename)
			failures = append(failures, assets.FileErrors{
				Name:   h.Filename,
				Errors: []string{h.Filename + " could not be uploaded, please try again"},
			})
			continue
		}
		uploaded = append(uploaded, *entry)
	}

	if len(uploaded) > 0 {
		if err := a.pendingStore.Add(r.Context(), project.ID, uploaded...); err != nil {
			slog.Error("pending store failed", "error", err, "project", project.ID)
			writeError(w, "Failed to record uploads.", http.StatusInternalServerError)
			return
		}
	}

	status := http.StatusCreated
	if len(uploaded) == 0 {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]any{
		"uploaded": uploaded,
		"failed":   failures,
	})
}

// uploadAssetFile streams one validated file to object storage and returns
// its pending entry.
func (a *API) uploadAssetFile(r *http.Request, projectID uuid.UUID, category models.AssetCategory, h *multipart.FileHeader) (*assets.PendingUpload, error) {
	file, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := h.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data[:min(len(data), 512)])
	}

	key := storage.AssetKey(projectID, string(category), h.Filename)
	bucket := a.storageClient.PublicBucket()
	if err := a.storageClient.Upload(r.Context(), bucket, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, err
	}

	return &assets.PendingUpload{
		Name:       h.Filename,
		URL:        a.storageClient.FileURL(key),
		Type:       contentType,
		Category:   category,
		Path:       key,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// AssetConfirm commits the pending uploads of one category into the
// project's file list. The category is required: confirming with an
// unknown or missing category leaves everything pending so no file is
// filed into the wrong bucket.
func (a *API) AssetConfirm(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	var payload struct {
		Category string `json:"category"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	category := models.AssetCategory(strings.TrimSpace(payload.Category))
	if !models.ValidAssetCategory(string(category)) {
		writeError(w, "A valid category is required to confirm uploads.", http.StatusBadRequest)
		return
	}

	taken, err := a.pendingStore.Take(r.Context(), project.ID, category)
	if err != nil {
		slog.Error("pending take failed", "error", err, "project", project.ID)
		writeError(w, "Failed to confirm uploads.", http.StatusInternalServerError)
		return
	}
	if len(taken) == 0 {
		writeError(w, "No pending uploads for that category.", http.StatusNotFound)
		return
	}

	records := make([]models.AssetRecord, 0, len(taken))
	for _, p := range taken {
		records = append(records, p.Record())
	}
	if err := a.assetStore.AppendFiles(project.ID, category, records); err != nil {
		slog.Error("asset append failed", "error", err, "project", project.ID)
		// Put the entries back so the confirm can be retried.
		if reErr := a.pendingStore.Add(r.Context(), project.ID, taken...); reErr != nil {
			slog.Error("pending restore failed", "error", reErr, "project", project.ID)
		}
		writeError(w, "Failed to confirm uploads.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category":  category,
		"confirmed": records,
	})
}

// AssetPending lists a project's unconfirmed uploads.
func (a *API) AssetPending(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	pending, err := a.pendingStore.List(r.Context(), project.ID)
	if err != nil {
		slog.Error("pending list failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load pending uploads.", http.StatusInternalServerError)
		return
	}
	if pending == nil {
		pending = []assets.PendingUpload{}
	}
	writeJSON(w, http.StatusOK, pending)
}

// AssetList returns all committed files of a project, grouped by category.
func (a *API) AssetList(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	all, err := a.assetStore.ListAll(project.ID)
	if err != nil {
		slog.Error("asset list failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load assets.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// AssetDelete removes a file from a category by URL, then deletes the
// stored objects. Duplicate list entries with the same URL all go in one
// call.
func (a *API) AssetDelete(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	category := models.AssetCategory(chi.URLParam(r, "category"))
	if !models.ValidAssetCategory(string(category)) {
		writeError(w, "Unknown asset category.", http.StatusBadRequest)
		return
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := decodeBody(r, &payload); err != nil || payload.URL == "" {
		writeError(w, "File URL is required.", http.StatusBadRequest)
		return
	}

	removed, err := a.assetStore.DeleteFileByURL(project.ID, category, payload.URL)
	if err != nil {
		slog.Error("asset delete failed", "error", err, "project", project.ID)
		writeError(w, "Failed to delete the file.", http.StatusInternalServerError)
		return
	}
	if len(removed) == 0 {
		writeError(w, "File not found.", http.StatusNotFound)
		return
	}

	// Object cleanup is best-effort; the list entry is already gone.
	// Older records predate the path column, so fall back to deriving
	// the key from the public URL.
	if a.storageClient != nil {
		for _, rec := range removed {
			key := rec.Path
			if key == "" {
				var ok bool
				if key, ok = a.storageClient.ExtractKey(rec.URL); !ok {
					continue
				}
			}
			if err := a.storageClient.Delete(r.Context(), a.storageClient.PublicBucket(), key); err != nil {
				slog.Warn("s3 asset delete failed", "error", err, "key", key)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"removed": len(removed),
	})
}

// AssetCategoryClear empties one category: the row goes first, then the
// stored objects best-effort. Used when a client re-uploads a whole set
// and the old files should not linger.
func (a *API) AssetCategoryClear(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	category := models.AssetCategory(chi.URLParam(r, "category"))
	if !models.ValidAssetCategory(string(category)) {
		writeError(w, "Unknown asset category.", http.StatusBadRequest)
		return
	}

	files, err := a.assetStore.ListFiles(project.ID, category)
	if err != nil {
		slog.Error("asset list failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load assets.", http.StatusInternalServerError)
		return
	}
	if err := a.assetStore.DeleteCategory(project.ID, category); err != nil {
		slog.Error("asset category clear failed", "error", err, "project", project.ID, "category", category)
		writeError(w, "Failed to clear the category.", http.StatusInternalServerError)
		return
	}

	if a.storageClient != nil {
		for _, rec := range files {
			key := rec.Path
			if key == "" {
				var ok bool
				if key, ok = a.storageClient.ExtractKey(rec.URL); !ok {
					continue
				}
			}
			if err := a.storageClient.Delete(r.Context(), a.storageClient.PublicBucket(), key); err != nil {
				slog.Warn("s3 asset delete failed", "error", err, "key", key)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"removed":  len(files),
	})
}
