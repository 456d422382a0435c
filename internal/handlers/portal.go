// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"brandkit/internal/models"
	"brandkit/internal/session"
)

// portalPayload is the request body for opening the client portal.
type portalPayload struct {
	ProjectID  string `json:"project_id"`
	AccessCode string `json:"access_code"`
	Name       string `json:"name"`
}

// PortalLogin checks a project access code and, on success, issues a
// client session scoped to that single project. Wrong codes and unknown
// projects get the same answer so the endpoint cannot be used to probe
// for project IDs.
func (a *API) PortalLogin(w http.ResponseWriter, r *http.Request) {
	var payload portalPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	projectID, err := parseID(strings.TrimSpace(payload.ProjectID))
	if err != nil {
		writeError(w, "The project or access code is not valid.", http.StatusUnauthorized)
		return
	}
	code := strings.TrimSpace(payload.AccessCode)
	if code == "" {
		writeError(w, "The project or access code is not valid.", http.StatusUnauthorized)
		return
	}

	ok, err := a.projectStore.VerifyAccessCode(projectID, code)
	if err != nil {
		slog.Error("access code verify failed", "error", err, "project", projectID)
		writeError(w, "Failed to check the access code.", http.StatusInternalServerError)
		return
	}
	if !ok {
		writeError(w, "The project or access code is not valid.", http.StatusUnauthorized)
		return
	}

	project, err := a.projectStore.FindByID(projectID)
	if err != nil || project == nil {
		slog.Error("project lookup failed after code verify", "error", err, "project", projectID)
		writeError(w, "Failed to open the portal.", http.StatusInternalServerError)
		return
	}
	client, err := a.clientStore.FindByID(project.ClientID)
	if err != nil || client == nil {
		slog.Error("client lookup failed", "error", err, "project", projectID)
		writeError(w, "Failed to open the portal.", http.StatusInternalServerError)
		return
	}

	displayName := strings.TrimSpace(payload.Name)
	if displayName == "" {
		displayName = client.Name
	}

	data := &session.Data{
		UserID:      client.ID,
		Email:       client.Email,
		DisplayName: displayName,
		Role:        models.RoleClient,
		ProjectID:   &project.ID,
	}
	if _, err := a.sessions.Create(r.Context(), w, data); err != nil {
		slog.Error("portal session create failed", "error", err, "project", projectID)
		writeError(w, "Failed to open the portal.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"project": project,
		"client":  map[string]string{"name": displayName},
	})
}

// PortalLogout destroys the client session.
func (a *API) PortalLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
		writeError(w, "Failed to log out.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
