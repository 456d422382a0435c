// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"brandkit/internal/models"
	"brandkit/internal/store"
)

// BriefList returns all creative briefs for a project, newest first.
func (a *API) BriefList(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	briefs, err := a.briefStore.ListByProject(project.ID)
	if err != nil {
		slog.Error("brief list failed", "error", err, "project", project.ID)
		writeError(w, "Failed to load briefs.", http.StatusInternalServerError)
		return
	}
	if briefs == nil {
		briefs = []models.CreativeBrief{}
	}
	writeJSON(w, http.StatusOK, briefs)
}

// BriefGet returns one creative brief.
func (a *API) BriefGet(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	id, ok := uuidParam(r, "briefID")
	if !ok {
		writeError(w, "Invalid brief ID.", http.StatusBadRequest)
		return
	}

	brief, err := a.briefStore.FindByID(id)
	if err != nil {
		slog.Error("brief lookup failed", "error", err, "brief", id)
		writeError(w, "Failed to load brief.", http.StatusInternalServerError)
		return
	}
	if brief == nil || brief.ProjectID != project.ID {
		writeError(w, "Brief not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, brief)
}

// briefEditPayload is the request body for editing one answer of a brief.
type briefEditPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BriefUpdateAnswer edits a single answer's text after submission. The
// question text stays as it read when the client answered.
func (a *API) BriefUpdateAnswer(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	id, ok := uuidParam(r, "briefID")
	if !ok {
		writeError(w, "Invalid brief ID.", http.StatusBadRequest)
		return
	}

	brief, err := a.briefStore.FindByID(id)
	if err != nil {
		slog.Error("brief lookup failed", "error", err, "brief", id)
		writeError(w, "Failed to load brief.", http.StatusInternalServerError)
		return
	}
	if brief == nil || brief.ProjectID != project.ID {
		writeError(w, "Brief not found.", http.StatusNotFound)
		return
	}

	var payload briefEditPayload
	if err := decodeBody(r, &payload); err != nil || payload.Question == "" {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if len(payload.Answer) > maxAnswerLen {
		writeError(w, "Answer is too long (max 20,000 characters).", http.StatusBadRequest)
		return
	}

	if err := a.briefStore.UpdateAnswer(id, payload.Question, payload.Answer); err != nil {
		if errors.Is(err, store.ErrAnswerNotFound) {
			writeError(w, "That question is not part of this brief.", http.StatusNotFound)
			return
		}
		slog.Error("brief answer update failed", "error", err, "brief", id)
		writeError(w, "Failed to update the answer.", http.StatusInternalServerError)
		return
	}

	updated, err := a.briefStore.FindByID(id)
	if err != nil {
		slog.Error("brief reload failed", "error", err, "brief", id)
		writeError(w, "Failed to load brief.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
