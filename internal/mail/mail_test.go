package mail

import (
	"strings"
	"testing"
)

// TestNewRequiresHostAndFrom verifies the mailer is disabled rather than
// misconfigured when the relay is not set up.
func TestNewRequiresHostAndFrom(t *testing.T) {
	if New("", "587", "u", "p", "noreply@example.com") != nil {
		t.Error("New without host must return nil")
	}
	if New("smtp.example.com", "587", "u", "p", "") != nil {
		t.Error("New without from must return nil")
	}
	if New("smtp.example.com", "", "u", "p", "noreply@example.com") == nil {
		t.Error("New with host and from must succeed")
	}
}

// TestBuildMessagePlain verifies the plain-text message shape.
func TestBuildMessagePlain(t *testing.T) {
	raw := string(BuildMessage("noreply@example.com", Message{
		To:      "client@example.com",
		Subject: "Your brand brief",
		Text:    "Please complete your questionnaire.",
	}))

	for _, want := range []string{
		"From: noreply@example.com\r\n",
		"To: client@example.com\r\n",
		"Content-Type: text/plain; charset=utf-8\r\n",
		"Please complete your questionnaire.",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}
	if strings.Contains(raw, "multipart/alternative") {
		t.Error("plain message must not be multipart")
	}
}

// TestBuildMessageHTML verifies the multipart/alternative shape with the
// plain part before the HTML part.
func TestBuildMessageHTML(t *testing.T) {
	raw := string(BuildMessage("noreply@example.com", Message{
		To:      "client@example.com",
		Subject: "Welcome",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	}))

	if !strings.Contains(raw, "multipart/alternative") {
		t.Fatalf("expected multipart message:\n%s", raw)
	}
	plainIdx := strings.Index(raw, "plain body")
	htmlIdx := strings.Index(raw, "<p>html body</p>")
	if plainIdx == -1 || htmlIdx == -1 {
		t.Fatalf("missing body parts:\n%s", raw)
	}
	if plainIdx > htmlIdx {
		t.Error("plain part must come before the HTML alternative")
	}
	if !strings.Contains(raw, "--"+multipartBoundary+"--") {
		t.Error("message missing closing boundary")
	}
}

// TestSendEmptyRecipient verifies sends without a recipient fail before
// touching the network.
func TestSendEmptyRecipient(t *testing.T) {
	m := New("smtp.example.com", "587", "", "", "noreply@example.com")
	if err := m.Send(Message{To: "  ", Subject: "x", Text: "y"}); err == nil {
		t.Error("Send with empty recipient must fail")
	}
}
