// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"brandkit/internal/middleware"
	"brandkit/internal/storage"
)

// maxPhotoSize caps a profile photo upload (5 MB).
const maxPhotoSize = 5 << 20

// ProfileGet returns the authenticated designer's account.
func (a *API) ProfileGet(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("user lookup failed", "error", err, "user", sess.UserID)
		writeError(w, "Failed to load profile.", http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeError(w, "Profile not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ProfileUpdate changes the designer's display name.
func (a *API) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(payload.DisplayName)
	if name == "" {
		writeError(w, "Display name is required.", http.StatusBadRequest)
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup failed", "error", err, "user", sess.UserID)
		writeError(w, "Failed to update profile.", http.StatusInternalServerError)
		return
	}
	if err := a.userStore.UpdateProfile(user.ID, name, user.PhotoURL); err != nil {
		slog.Error("profile update failed", "error", err, "user", user.ID)
		writeError(w, "Failed to update profile.", http.StatusInternalServerError)
		return
	}
	user.DisplayName = name
	writeJSON(w, http.StatusOK, user)
}

// ProfilePhoto stores a new profile photo under the user's fixed key,
// replacing the previous one, and records the URL on the account.
func (a *API) ProfilePhoto(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}
	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+1024)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeError(w, "Photo too large. Maximum size is 5 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, _, err := r.FormFile("file")
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
	if contentType != "image/jpeg" && contentType != "image/png" {
		writeError(w, "Profile photos must be JPEG or PNG.", http.StatusBadRequest)
		return
	}

	key := storage.ProfilePhotoKey(sess.UserID)
	bucket := a.storageClient.PublicBucket()
	if err := a.storageClient.Upload(r.Context(), bucket, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("profile photo upload failed", "error", err, "key", key)
		writeError(w, "Failed to store the photo.", http.StatusInternalServerError)
		return
	}

	url := a.storageClient.FileURL(key)
	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup failed", "error", err, "user", sess.UserID)
		writeError(w, "Failed to update profile.", http.StatusInternalServerError)
		return
	}
	if err := a.userStore.UpdateProfile(user.ID, user.DisplayName, &url); err != nil {
		slog.Error("profile photo record failed", "error", err, "user", user.ID)
		writeError(w, "Failed to update profile.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"photo_url": url})
}
