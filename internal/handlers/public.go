// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"brandkit/internal/markdown"
)

// qrSize is the pixel size of generated share QR codes.
const qrSize = 256

// PublicGuidelines serves a project's brand guidelines without
// authentication. The URL is the share link: anyone holding it may view
// the document, read-only. Narrative fields are rendered from Markdown to
// HTML alongside the raw source.
func (a *API) PublicGuidelines(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "projectID")
	if !ok {
		writeError(w, "Not found.", http.StatusNotFound)
		return
	}

	g, err := a.guidelinesStore.Get(id)
	if err != nil {
		slog.Error("public guidelines get failed", "error", err, "project", id)
		writeError(w, "Failed to load guidelines.", http.StatusInternalServerError)
		return
	}
	if g == nil {
		writeError(w, "Not found.", http.StatusNotFound)
		return
	}

	// Render the narrative fields; fall back to the raw text on error.
	html := map[string]string{}
	for name, src := range map[string]string{
		"brand_story": g.BrandStory,
		"voice_tone":  g.VoiceTone,
		"usage_notes": g.UsageNotes,
	} {
		if src == "" {
			continue
		}
		rendered, err := markdown.ToHTML(src)
		if err != nil {
			slog.Warn("markdown render failed", "error", err, "project", id)
			continue
		}
		html[name] = rendered
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"guidelines": g,
		"html":       html,
	})
}

// PublicGuidelinesQR returns a PNG QR code pointing at the public share
// page, for print material and client handoff decks.
func (a *API) PublicGuidelinesQR(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "projectID")
	if !ok {
		writeError(w, "Not found.", http.StatusNotFound)
		return
	}

	// Only projects with a saved document get a code.
	g, err := a.guidelinesStore.Get(id)
	if err != nil {
		slog.Error("public guidelines get failed", "error", err, "project", id)
		writeError(w, "Failed to load guidelines.", http.StatusInternalServerError)
		return
	}
	if g == nil {
		writeError(w, "Not found.", http.StatusNotFound)
		return
	}

	shareURL := a.publicURL + "/p/" + id.String() + "/guidelines"
	png, err := qrcode.Encode(shareURL, qrcode.Medium, qrSize)
	if err != nil {
		slog.Error("qr encode failed", "error", err, "project", id)
		writeError(w, "Failed to generate the QR code.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
