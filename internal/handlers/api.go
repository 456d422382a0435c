// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the BrandKit API.
// Handlers are grouped by concern (designer API, client portal, public
// share pages) and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandkit/internal/assets"
	"brandkit/internal/mail"
	"brandkit/internal/session"
	"brandkit/internal/storage"
	"brandkit/internal/store"
	"brandkit/internal/wizard"
)

// API groups all HTTP handlers and their dependencies.
type API struct {
	sessions        *session.Store
	userStore       *store.UserStore
	clientStore     *store.ClientStore
	projectStore    *store.ProjectStore
	templateStore   *store.TemplateStore
	briefStore      *store.BriefStore
	assetStore      *store.AssetStore
	guidelinesStore *store.GuidelinesStore
	wizardStore     *wizard.Store
	pendingStore    *assets.PendingStore
	storageClient   *storage.Client
	mailer          *mail.Mailer
	publicURL       string
}

// New creates the API handler group with the given dependencies.
// storageClient and mailer may be nil if S3 or SMTP are not configured.
func New(sessions *session.Store, userStore *store.UserStore, clientStore *store.ClientStore, projectStore *store.ProjectStore, templateStore *store.TemplateStore, briefStore *store.BriefStore, assetStore *store.AssetStore, guidelinesStore *store.GuidelinesStore, wizardStore *wizard.Store, pendingStore *assets.PendingStore, storageClient *storage.Client, mailer *mail.Mailer, publicURL string) *API {
	return &API{
		sessions:        sessions,
		userStore:       userStore,
		clientStore:     clientStore,
		projectStore:    projectStore,
		templateStore:   templateStore,
		briefStore:      briefStore,
		assetStore:      assetStore,
		guidelinesStore: guidelinesStore,
		wizardStore:     wizardStore,
		pendingStore:    pendingStore,
		storageClient:   storageClient,
		mailer:          mailer,
		publicURL:       publicURL,
	}
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response. msg is user-facing; the real
// error is logged by the caller.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody parses the request body into v. Unknown fields are ignored,
// matching what browsers send from evolving frontends.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// uuidParam parses a chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseID parses a UUID from a request body field.
func parseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
