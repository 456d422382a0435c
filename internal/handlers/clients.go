// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"brandkit/internal/middleware"
	"brandkit/internal/models"
)

// clientPayload is the request body for creating or updating a client.
type clientPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
}

// ClientList returns the authenticated designer's clients.
func (a *API) ClientList(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	clients, err := a.clientStore.ListByDesigner(sess.UserID)
	if err != nil {
		slog.Error("client list failed", "error", err)
		writeError(w, "Failed to load clients.", http.StatusInternalServerError)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

// ClientCreate adds a new client for the authenticated designer.
func (a *API) ClientCreate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var payload clientPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if msg := validateClient(payload.Name, payload.Email); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	created, err := a.clientStore.Create(&models.Client{
		DesignerID: sess.UserID,
		Name:       strings.TrimSpace(payload.Name),
		Email:      strings.TrimSpace(payload.Email),
		Company:    payload.Company,
		Phone:      payload.Phone,
	})
	if err != nil {
		slog.Error("client create failed", "error", err)
		writeError(w, "Failed to create client.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ClientGet returns one client with its projects.
func (a *API) ClientGet(w http.ResponseWriter, r *http.Request) {
	client := a.authorizeClient(w, r)
	if client == nil {
		return
	}

	projects, err := a.projectStore.ListByClient(client.ID)
	if err != nil {
		slog.Error("client projects failed", "error", err, "client", client.ID)
		writeError(w, "Failed to load client.", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"client":   client,
		"projects": projects,
	})
}

// ClientUpdate modifies a client's contact details.
func (a *API) ClientUpdate(w http.ResponseWriter, r *http.Request) {
	client := a.authorizeClient(w, r)
	if client == nil {
		return
	}

	var payload clientPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if msg := validateClient(payload.Name, payload.Email); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	client.Name = strings.TrimSpace(payload.Name)
	client.Email = strings.TrimSpace(payload.Email)
	client.Company = payload.Company
	client.Phone = payload.Phone
	if err := a.clientStore.Update(client); err != nil {
		slog.Error("client update failed", "error", err, "client", client.ID)
		writeError(w, "Failed to update client.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// ClientDelete removes a client and, via cascade, all of its projects.
func (a *API) ClientDelete(w http.ResponseWriter, r *http.Request) {
	client := a.authorizeClient(w, r)
	if client == nil {
		return
	}

	if err := a.clientStore.Delete(client.ID); err != nil {
		slog.Error("client delete failed", "error", err, "client", client.ID)
		writeError(w, "Failed to delete client.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// authorizeClient loads the client from the URL and checks it belongs to
// the authenticated designer. Writes the error response and returns nil on
// any failure.
func (a *API) authorizeClient(w http.ResponseWriter, r *http.Request) *models.Client {
	id, ok := uuidParam(r, "clientID")
	if !ok {
		writeError(w, "Invalid client ID.", http.StatusBadRequest)
		return nil
	}

	client, err := a.clientStore.FindByID(id)
	if err != nil {
		slog.Error("client lookup failed", "error", err, "client", id)
		writeError(w, "Failed to load client.", http.StatusInternalServerError)
		return nil
	}
	if client == nil {
		writeError(w, "Client not found.", http.StatusNotFound)
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	if client.DesignerID != sess.UserID {
		writeError(w, "Client not found.", http.StatusNotFound)
		return nil
	}
	return client
}
