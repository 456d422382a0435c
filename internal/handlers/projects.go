// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"brandkit/internal/middleware"
	"brandkit/internal/models"
)

// projectPayload is the request body for creating or updating a project.
type projectPayload struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

// ProjectList returns the authenticated designer's projects.
func (a *API) ProjectList(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	projects, err := a.projectStore.ListByDesigner(sess.UserID)
	if err != nil {
		slog.Error("project list failed", "error", err)
		writeError(w, "Failed to load projects.", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// ProjectCreate starts a new project for one of the designer's clients.
func (a *API) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var payload projectPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if msg := validateProject(payload.Name, payload.Type); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	clientID, err := parseID(payload.ClientID)
	if err != nil {
		writeError(w, "Invalid client ID.", http.StatusBadRequest)
		return
	}
	client, err := a.clientStore.FindByID(clientID)
	if err != nil {
		slog.Error("client lookup failed", "error", err, "client", clientID)
		writeError(w, "Failed to create project.", http.StatusInternalServerError)
		return
	}
	if client == nil || client.DesignerID != sess.UserID {
		writeError(w, "Client not found.", http.StatusNotFound)
		return
	}

	created, err := a.projectStore.Create(&models.Project{
		DesignerID: sess.UserID,
		ClientID:   clientID,
		Name:       strings.TrimSpace(payload.Name),
		Type:       models.TemplateType(payload.Type),
		Status:     models.ProjectStatusOnboarding,
	})
	if err != nil {
		slog.Error("project create failed", "error", err)
		writeError(w, "Failed to create project.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ProjectGet returns one project.
func (a *API) ProjectGet(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ProjectUpdate modifies a project's name, type and status.
func (a *API) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	var payload projectPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if msg := validateProject(payload.Name, payload.Type); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	project.Name = strings.TrimSpace(payload.Name)
	project.Type = models.TemplateType(payload.Type)
	if payload.Status != "" {
		switch models.ProjectStatus(payload.Status) {
		case models.ProjectStatusOnboarding, models.ProjectStatusActive, models.ProjectStatusArchived:
			project.Status = models.ProjectStatus(payload.Status)
		default:
			writeError(w, "Invalid project status.", http.StatusBadRequest)
			return
		}
	}

	if err := a.projectStore.Update(project); err != nil {
		slog.Error("project update failed", "error", err, "project", project.ID)
		writeError(w, "Failed to update project.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ProjectDelete removes a project and its briefs, assets and guidelines.
func (a *API) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	if err := a.projectStore.Delete(project.ID); err != nil {
		slog.Error("project delete failed", "error", err, "project", project.ID)
		writeError(w, "Failed to delete project.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// accessCodeBytes is the entropy behind a generated portal code.
const accessCodeBytes = 4

// ProjectAccessCode generates a fresh portal access code for a project,
// stores its hash, and returns the plain code once. Regenerating
// invalidates the previous code.
func (a *API) ProjectAccessCode(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	code, err := generateAccessCode()
	if err != nil {
		slog.Error("access code generation failed", "error", err)
		writeError(w, "Failed to generate access code.", http.StatusInternalServerError)
		return
	}
	if err := a.projectStore.SetAccessCode(project.ID, code); err != nil {
		slog.Error("access code store failed", "error", err, "project", project.ID)
		writeError(w, "Failed to generate access code.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"project_id":  project.ID.String(),
		"access_code": code,
	})
}

// generateAccessCode returns a short human-typeable code like "7F3A-C29B".
func generateAccessCode() (string, error) {
	buf := make([]byte, accessCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%02X%02X-%02X%02X", buf[0], buf[1], buf[2], buf[3]), nil
}

// authorizeProject loads the project from the URL and checks the session
// may touch it: designers must own it, client sessions must be scoped to
// it. Writes the error response and returns nil on any failure.
func (a *API) authorizeProject(w http.ResponseWriter, r *http.Request) *models.Project {
	id, ok := uuidParam(r, "projectID")
	if !ok {
		writeError(w, "Invalid project ID.", http.StatusBadRequest)
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil || !sess.CanAccessProject(id) {
		writeError(w, "Project not found.", http.StatusNotFound)
		return nil
	}

	project, err := a.projectStore.FindByID(id)
	if err != nil {
		slog.Error("project lookup failed", "error", err, "project", id)
		writeError(w, "Failed to load project.", http.StatusInternalServerError)
		return nil
	}
	if project == nil {
		writeError(w, "Project not found.", http.StatusNotFound)
		return nil
	}
	if sess.IsDesigner() && project.DesignerID != sess.UserID {
		writeError(w, "Project not found.", http.StatusNotFound)
		return nil
	}
	return project
}
