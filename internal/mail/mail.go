// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mail sends transactional email over SMTP: wizard invitations
// and designer notifications. Sends are one-shot — a failure is returned
// to the caller and never retried.
package mail

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Message is one outbound email. Text is the plain body; HTML, when set,
// is attached as a multipart/alternative part.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends messages through a single SMTP relay.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// New creates a Mailer. Returns nil if host or from are empty, allowing
// the app to start without a mail relay configured.
func New(host, port, username, password, from string) *Mailer {
	if host == "" || from == "" {
		return nil
	}
	if port == "" {
		port = "587"
	}
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

// Send delivers the message through the relay. The raw transport error is
// returned for logging; callers surface a paraphrased message to users.
func (m *Mailer) Send(msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("mail: empty recipient")
	}

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	body := BuildMessage(m.from, msg)
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, []string{msg.To}, body); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// multipartBoundary separates the plain and HTML alternatives. Static is
// fine: the parts are quoted-printable-free plain text and the boundary
// is unlikely to occur in either.
const multipartBoundary = "brandkit-alt-7f39c2"

// BuildMessage assembles the RFC 5322 message bytes. With only Text set
// the message is plain text/plain; with HTML set it becomes
// multipart/alternative with the plain part first.
func BuildMessage(from string, msg Message) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTML == "" {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(msg.Text)
		return []byte(b.String())
	}

	b.WriteString("Content-Type: multipart/alternative; boundary=" + multipartBoundary + "\r\n")
	b.WriteString("\r\n")

	b.WriteString("--" + multipartBoundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	b.WriteString("--" + multipartBoundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	b.WriteString("--" + multipartBoundary + "--\r\n")
	return []byte(b.String())
}
