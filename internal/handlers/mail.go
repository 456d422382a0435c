// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"brandkit/internal/mail"
)

// mailPayload is the request body for the mail endpoints. Either "text" or
// "message" carries the plain body; "html" is optional.
type mailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Message string `json:"message"`
	HTML    string `json:"html"`
}

// plainBody returns whichever body field was provided.
func (p *mailPayload) plainBody() string {
	if p.Text != "" {
		return p.Text
	}
	return p.Message
}

// MailSend delivers a one-off email through the configured relay. The
// response only says whether the relay accepted the message; transport
// errors are logged with the details and paraphrased to the caller.
func (a *API) MailSend(w http.ResponseWriter, r *http.Request) {
	a.sendMail(w, r, "")
}

// MailInvite sends a wizard invitation. Identical transport to MailSend,
// but with a default subject so the frontend can fire-and-forget.
func (a *API) MailInvite(w http.ResponseWriter, r *http.Request) {
	a.sendMail(w, r, "You're invited to start your brand questionnaire")
}

func (a *API) sendMail(w http.ResponseWriter, r *http.Request, defaultSubject string) {
	if a.mailer == nil {
		writeError(w, "Email is not configured.", http.StatusServiceUnavailable)
		return
	}

	var payload mailPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	to := strings.TrimSpace(payload.To)
	if to == "" || !strings.Contains(to, "@") {
		writeError(w, "A valid recipient address is required.", http.StatusBadRequest)
		return
	}
	body := payload.plainBody()
	if strings.TrimSpace(body) == "" {
		writeError(w, "A message body is required.", http.StatusBadRequest)
		return
	}
	subject := strings.TrimSpace(payload.Subject)
	if subject == "" {
		subject = defaultSubject
	}
	if subject == "" {
		writeError(w, "A subject is required.", http.StatusBadRequest)
		return
	}

	err := a.mailer.Send(mail.Message{
		To:      to,
		Subject: subject,
		Text:    body,
		HTML:    payload.HTML,
	})
	if err != nil {
		slog.Error("mail send failed", "error", err, "to", to)
		writeError(w, "The email could not be sent. Please try again later.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
