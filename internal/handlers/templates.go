// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"brandkit/internal/middleware"
	"brandkit/internal/models"
	"brandkit/internal/store"
)

// templatePayload is the request body for creating or updating a
// questionnaire template.
type templatePayload struct {
	Type   string                 `json:"type"`
	Name   string                 `json:"name"`
	Groups []models.QuestionGroup `json:"groups"`
}

// movePayload is the request body for reordering groups or questions.
type movePayload struct {
	Group int `json:"group"` // group index, for question moves
	From  int `json:"from"`
	To    int `json:"to"`
}

// TemplateList returns the designer's templates plus the system defaults.
func (a *API) TemplateList(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	templates, err := a.templateStore.ListForOwner(sess.UserID)
	if err != nil {
		slog.Error("template list failed", "error", err)
		writeError(w, "Failed to load templates.", http.StatusInternalServerError)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, templates)
}

// TemplateCreate saves a new designer-owned questionnaire template.
func (a *API) TemplateCreate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var payload templatePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if !validTemplateType(payload.Type) {
		writeError(w, "Template type must be branding, website, or app.", http.StatusBadRequest)
		return
	}
	if msg := validateTemplateShape(payload.Name, payload.Groups); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	ownerID := sess.UserID
	created, err := a.templateStore.Create(&models.Template{
		OwnerID: &ownerID,
		Type:    models.TemplateType(payload.Type),
		Name:    strings.TrimSpace(payload.Name),
		Groups:  payload.Groups,
	})
	if err != nil {
		slog.Error("template create failed", "error", err)
		writeError(w, "Failed to create template.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// TemplateGet returns one template.
func (a *API) TemplateGet(w http.ResponseWriter, r *http.Request) {
	tpl := a.authorizeTemplate(w, r)
	if tpl == nil {
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// TemplateUpdate replaces a template's name and groups. System defaults
// are immutable; customize by creating an owned template of the same type.
func (a *API) TemplateUpdate(w http.ResponseWriter, r *http.Request) {
	tpl := a.authorizeTemplate(w, r)
	if tpl == nil {
		return
	}

	var payload templatePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if msg := validateTemplateShape(payload.Name, payload.Groups); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	tpl.Name = strings.TrimSpace(payload.Name)
	tpl.Groups = payload.Groups
	if err := a.templateStore.Update(tpl); err != nil {
		if errors.Is(err, store.ErrSystemTemplate) {
			writeError(w, "System templates cannot be edited.", http.StatusForbidden)
			return
		}
		slog.Error("template update failed", "error", err, "template", tpl.ID)
		writeError(w, "Failed to update template.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// TemplateDelete removes a designer-owned template.
func (a *API) TemplateDelete(w http.ResponseWriter, r *http.Request) {
	tpl := a.authorizeTemplate(w, r)
	if tpl == nil {
		return
	}

	if err := a.templateStore.Delete(tpl.ID); err != nil {
		if errors.Is(err, store.ErrSystemTemplate) {
			writeError(w, "System templates cannot be deleted.", http.StatusForbidden)
			return
		}
		slog.Error("template delete failed", "error", err, "template", tpl.ID)
		writeError(w, "Failed to delete template.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// TemplateMoveGroup reorders one group within a template. Identity lives
// in the group IDs, so a move never touches collected answers.
func (a *API) TemplateMoveGroup(w http.ResponseWriter, r *http.Request) {
	tpl := a.authorizeTemplate(w, r)
	if tpl == nil {
		return
	}

	var payload movePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	tpl.MoveGroup(payload.From, payload.To)
	if err := a.templateStore.Update(tpl); err != nil {
		if errors.Is(err, store.ErrSystemTemplate) {
			writeError(w, "System templates cannot be edited.", http.StatusForbidden)
			return
		}
		slog.Error("template move group failed", "error", err, "template", tpl.ID)
		writeError(w, "Failed to update template.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// TemplateMoveQuestion reorders one question within a group.
func (a *API) TemplateMoveQuestion(w http.ResponseWriter, r *http.Request) {
	tpl := a.authorizeTemplate(w, r)
	if tpl == nil {
		return
	}

	var payload movePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	tpl.MoveQuestion(payload.Group, payload.From, payload.To)
	if err := a.templateStore.Update(tpl); err != nil {
		if errors.Is(err, store.ErrSystemTemplate) {
			writeError(w, "System templates cannot be edited.", http.StatusForbidden)
			return
		}
		slog.Error("template move question failed", "error", err, "template", tpl.ID)
		writeError(w, "Failed to update template.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// authorizeTemplate loads the template from the URL. System templates are
// visible to every designer; owned templates only to their owner.
func (a *API) authorizeTemplate(w http.ResponseWriter, r *http.Request) *models.Template {
	id, ok := uuidParam(r, "templateID")
	if !ok {
		writeError(w, "Invalid template ID.", http.StatusBadRequest)
		return nil
	}

	tpl, err := a.templateStore.FindByID(id)
	if err != nil {
		slog.Error("template lookup failed", "error", err, "template", id)
		writeError(w, "Failed to load template.", http.StatusInternalServerError)
		return nil
	}
	if tpl == nil {
		writeError(w, "Template not found.", http.StatusNotFound)
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	if !tpl.IsSystem() && *tpl.OwnerID != sess.UserID {
		writeError(w, "Template not found.", http.StatusNotFound)
		return nil
	}
	return tpl
}
