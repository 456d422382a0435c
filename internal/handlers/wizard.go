// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandkit/internal/middleware"
	"brandkit/internal/models"
	"brandkit/internal/storage"
	"brandkit/internal/wizard"
)

// answerPayload is the request body for recording a text answer.
type answerPayload struct {
	Question string `json:"question"`
	Text     string `json:"text"`
}

// slotPayload is the request body for writing or clearing one slot of a
// textList or imageUpload answer.
type slotPayload struct {
	Question string `json:"question"`
	Slot     int    `json:"slot"`
	Value    string `json:"value"`
	Clear    bool   `json:"clear"`
}

// WizardStart creates a wizard session for a project. The questionnaire is
// the designer's template for the project type, the system default when no
// custom one exists, or the built-in fallback when neither loads.
func (a *API) WizardStart(w http.ResponseWriter, r *http.Request) {
	project := a.authorizeProject(w, r)
	if project == nil {
		return
	}

	tpl, err := a.templateStore.FindForProject(project.DesignerID, project.Type)
	if err != nil {
		slog.Error("wizard template resolve failed", "error", err, "project", project.ID)
		writeError(w, "Failed to start the wizard.", http.StatusInternalServerError)
		return
	}

	sections := wizard.ExpandTemplate(tpl)
	var templateID uuid.UUID
	if tpl != nil {
		templateID = tpl.ID
	}

	ws := wizard.NewSession(project.ID, templateID, project.Type, sections)
	if err := a.wizardStore.Save(r.Context(), ws); err != nil {
		slog.Error("wizard session save failed", "error", err, "project", project.ID)
		writeError(w, "Failed to start the wizard.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, wizardView(ws))
}

// WizardState returns the current position and answers of a session.
func (a *API) WizardState(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}
	writeJSON(w, http.StatusOK, wizardView(ws))
}

// WizardAnswer records a text answer, last write wins.
func (a *API) WizardAnswer(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}

	var payload answerPayload
	if err := decodeBody(r, &payload); err != nil || payload.Question == "" {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if len(payload.Text) > maxAnswerLen {
		writeError(w, "Answer is too long (max 20,000 characters).", http.StatusBadRequest)
		return
	}

	ws.SetText(payload.Question, payload.Text)
	a.saveWizard(w, r, ws)
}

// WizardSlot writes or clears one slot of a textList or imageUpload
// answer. Slots keep their position; clearing leaves a hole rather than
// shifting neighbours.
func (a *API) WizardSlot(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}

	var payload slotPayload
	if err := decodeBody(r, &payload); err != nil || payload.Question == "" {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	if len(payload.Value) > maxAnswerLen {
		writeError(w, "Answer is too long (max 20,000 characters).", http.StatusBadRequest)
		return
	}

	var err error
	if payload.Clear {
		err = ws.ClearSlot(payload.Question, payload.Slot)
	} else {
		err = ws.SetSlot(payload.Question, payload.Slot, payload.Value)
	}
	if err != nil {
		writeError(w, "Slot index is out of range.", http.StatusBadRequest)
		return
	}
	a.saveWizard(w, r, ws)
}

// WizardImage accepts an inspiration image for one slot of an imageUpload
// question: the file goes to object storage immediately and the slot
// records its URL.
func (a *API) WizardImage(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, wizard.MaxSlotImageSize+1024)
	if err := r.ParseMultipartForm(wizard.MaxSlotImageSize); err != nil {
		writeError(w, "Image too large. Maximum size is 5 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	question := r.FormValue("question")
	slot, err := parseSlotIndex(r.FormValue("slot"))
	if question == "" || err != nil {
		writeError(w, "Question and slot are required.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Sniff the real content type rather than trusting the part header.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	if err := wizard.ValidateSlotImage(contentType, header.Size); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, "Failed to process file.", http.StatusInternalServerError)
		return
	}
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	key := storage.UploadKey(sess.UserID, time.Now(), header.Filename)
	bucket := a.storageClient.PublicBucket()
	if err := a.storageClient.Upload(r.Context(), bucket, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("wizard image upload failed", "error", err, "key", key)
		writeError(w, "Failed to upload image.", http.StatusInternalServerError)
		return
	}

	url := a.storageClient.FileURL(key)
	if err := ws.SetSlot(question, slot, url); err != nil {
		writeError(w, "Slot index is out of range.", http.StatusBadRequest)
		return
	}

	if err := a.wizardStore.Save(r.Context(), ws); err != nil {
		slog.Error("wizard session save failed", "error", err, "session", ws.ID)
		writeError(w, "Failed to save your answer.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// WizardNext advances to the next section; past the last section the
// session enters review.
func (a *API) WizardNext(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}
	ws.Next()
	a.saveWizard(w, r, ws)
}

// WizardBack returns to the previous section.
func (a *API) WizardBack(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}
	if err := ws.Back(); err != nil {
		writeError(w, "Already at the first step.", http.StatusBadRequest)
		return
	}
	a.saveWizard(w, r, ws)
}

// WizardCancel discards the session and everything answered in it.
func (a *API) WizardCancel(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}
	if err := a.wizardStore.Delete(r.Context(), ws.ID); err != nil {
		slog.Error("wizard session delete failed", "error", err, "session", ws.ID)
		writeError(w, "Failed to cancel the wizard.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// WizardSubmit turns the collected answers into a creative brief and
// discards the session. Single-section runs must be complete; multi-step
// runs may submit with gaps, which land in the brief as empty answers.
func (a *API) WizardSubmit(w http.ResponseWriter, r *http.Request) {
	ws := a.loadWizard(w, r)
	if ws == nil {
		return
	}

	if ws.Strict {
		if missing := ws.Unanswered(); len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Please answer every question before submitting.",
				"missing": missing,
			})
			return
		}
	}

	brief, err := a.briefStore.Create(&models.CreativeBrief{
		ProjectID: ws.ProjectID,
		Type:      ws.Type,
		Answers:   ws.BriefAnswers(),
	})
	if err != nil {
		slog.Error("brief create failed", "error", err, "project", ws.ProjectID)
		writeError(w, "Failed to save the brief.", http.StatusInternalServerError)
		return
	}

	// Onboarding is done once the first brief lands.
	if project, err := a.projectStore.FindByID(ws.ProjectID); err == nil && project != nil &&
		project.Status == models.ProjectStatusOnboarding {
		project.Status = models.ProjectStatusActive
		if err := a.projectStore.Update(project); err != nil {
			slog.Warn("project status update failed", "error", err, "project", project.ID)
		}
	}

	if err := a.wizardStore.Delete(r.Context(), ws.ID); err != nil {
		slog.Warn("wizard session cleanup failed", "error", err, "session", ws.ID)
	}

	writeJSON(w, http.StatusCreated, brief)
}

// loadWizard fetches the session named in the URL and checks the caller
// may touch its project. Writes the error response and returns nil on any
// failure.
func (a *API) loadWizard(w http.ResponseWriter, r *http.Request) *wizard.Session {
	id := chi.URLParam(r, "sessionID")
	if id == "" {
		writeError(w, "Invalid session ID.", http.StatusBadRequest)
		return nil
	}

	ws, err := a.wizardStore.Get(r.Context(), id)
	if err != nil {
		slog.Error("wizard session get failed", "error", err, "session", id)
		writeError(w, "Failed to load the wizard.", http.StatusInternalServerError)
		return nil
	}
	if ws == nil {
		writeError(w, "Wizard session not found or expired.", http.StatusNotFound)
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil || !sess.CanAccessProject(ws.ProjectID) {
		writeError(w, "Wizard session not found or expired.", http.StatusNotFound)
		return nil
	}
	return ws
}

// saveWizard persists the session and responds with the updated view.
func (a *API) saveWizard(w http.ResponseWriter, r *http.Request, ws *wizard.Session) {
	if err := a.wizardStore.Save(r.Context(), ws); err != nil {
		slog.Error("wizard session save failed", "error", err, "session", ws.ID)
		writeError(w, "Failed to save your answer.", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, wizardView(ws))
}

// wizardView shapes a session for the frontend: position, the active
// section, and in review the full section list with any unanswered labels.
func wizardView(ws *wizard.Session) map[string]any {
	view := map[string]any{
		"session_id": ws.ID,
		"project_id": ws.ProjectID,
		"type":       ws.Type,
		"index":      ws.Index,
		"steps":      len(ws.Sections),
		"in_review":  ws.InReview(),
		"strict":     ws.Strict,
		"answers":    ws.Answers,
	}
	if sec := ws.CurrentSection(); sec != nil {
		view["section"] = sec
	}
	if ws.InReview() {
		view["sections"] = ws.Sections
		view["unanswered"] = ws.Unanswered()
	}
	return view
}

// parseSlotIndex parses a slot index form value.
func parseSlotIndex(s string) (int, error) {
	return strconv.Atoi(s)
}
