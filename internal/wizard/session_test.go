package wizard

import (
	"testing"

	"github.com/google/uuid"

	"brandkit/internal/models"
)

// twoSectionSession builds a wizard with 2 sections of 1 question each.
func twoSectionSession() *Session {
	sections := []Section{
		{Title: "One", Questions: []DisplayQuestion{{Name: "q1", Label: "First?", Type: models.QuestionTypeText}}},
		{Title: "Two", Questions: []DisplayQuestion{{Name: "q2", Label: "Second?", Type: models.QuestionTypeText}}},
	}
	return NewSession(uuid.New(), uuid.New(), models.TemplateTypeBranding, sections)
}

// TestSessionNavigation verifies that Next twice from a 2-section wizard
// reaches review, and Back from review returns to the last section.
func TestSessionNavigation(t *testing.T) {
	s := twoSectionSession()

	if s.InReview() {
		t.Fatal("new session must start on the first section, not review")
	}
	if sec := s.CurrentSection(); sec == nil || sec.Title != "One" {
		t.Fatalf("CurrentSection() = %+v, want section One", sec)
	}

	s.SetText("q1", "answer one")
	s.Next()
	if sec := s.CurrentSection(); sec == nil || sec.Title != "Two" {
		t.Fatalf("after first Next, CurrentSection() = %+v, want section Two", sec)
	}

	s.SetText("q2", "answer two")
	s.Next()
	if !s.InReview() {
		t.Fatal("after second Next the session must be in review")
	}
	if s.CurrentSection() != nil {
		t.Error("CurrentSection() must be nil in review")
	}

	// Back from review lands on the last section, not before the first.
	if err := s.Back(); err != nil {
		t.Fatalf("Back from review: %v", err)
	}
	if s.InReview() {
		t.Fatal("Back from review must leave the review state")
	}
	if sec := s.CurrentSection(); sec == nil || sec.Title != "Two" {
		t.Fatalf("Back from review landed on %+v, want section Two", sec)
	}
}

// TestSessionBackAtStart verifies Back is unavailable on the first section.
func TestSessionBackAtStart(t *testing.T) {
	s := twoSectionSession()
	if err := s.Back(); err == nil {
		t.Error("Back at index 0 must fail")
	}
	if s.Index != 0 {
		t.Errorf("failed Back moved the index to %d", s.Index)
	}
}

// TestSessionNextInReview verifies Next past review does not run off the end.
func TestSessionNextInReview(t *testing.T) {
	s := twoSectionSession()
	for i := 0; i < 5; i++ {
		s.Next()
	}
	if s.Index != len(s.Sections) {
		t.Errorf("Index = %d after repeated Next, want %d", s.Index, len(s.Sections))
	}
}

// TestSessionTextAnswers verifies last-write-wins capture for text answers.
func TestSessionTextAnswers(t *testing.T) {
	s := twoSectionSession()
	s.SetText("q1", "draft")
	s.SetText("q1", "final")
	if got := s.Answers["q1"].Text; got != "final" {
		t.Errorf("answer = %q, want last write %q", got, "final")
	}
}

// TestSessionSlots verifies fixed-size slot answers: empty slots persist,
// clearing nulls the index without shrinking the list.
func TestSessionSlots(t *testing.T) {
	s := twoSectionSession()

	if err := s.SetSlot("q1", 1, "middle"); err != nil {
		t.Fatalf("SetSlot: %v", err)
	}
	slots := s.Answers["q1"].Slots
	if len(slots) != NumSlots {
		t.Fatalf("slot list length = %d, want %d", len(slots), NumSlots)
	}
	if slots[0] == nil || *slots[0] != "" {
		t.Error("untouched slot 0 must hold an empty string, not nil")
	}
	if slots[1] == nil || *slots[1] != "middle" {
		t.Errorf("slot 1 = %v, want \"middle\"", slots[1])
	}

	if err := s.ClearSlot("q1", 1); err != nil {
		t.Fatalf("ClearSlot: %v", err)
	}
	slots = s.Answers["q1"].Slots
	if len(slots) != NumSlots {
		t.Fatalf("clearing changed slot count to %d", len(slots))
	}
	if slots[1] != nil {
		t.Error("cleared slot must be nil")
	}

	if err := s.SetSlot("q1", NumSlots, "overflow"); err == nil {
		t.Error("SetSlot past the fixed size must fail")
	}
}

// TestSessionStrictFlag verifies that only single-section wizards enforce
// completeness.
func TestSessionStrictFlag(t *testing.T) {
	single := NewSession(uuid.New(), uuid.New(), models.TemplateTypeBranding, []Section{
		{Title: "Only", Questions: []DisplayQuestion{{Name: "q", Label: "Q?", Type: models.QuestionTypeText}}},
	})
	if !single.Strict {
		t.Error("single-section session must be strict")
	}
	if twoSectionSession().Strict {
		t.Error("multi-section session must not be strict")
	}
}

// TestSessionUnanswered verifies the completeness check lists every
// question whose answer trims to empty, in section order.
func TestSessionUnanswered(t *testing.T) {
	s := twoSectionSession()

	missing := s.Unanswered()
	if len(missing) != 2 {
		t.Fatalf("Unanswered() = %v, want both questions", missing)
	}
	if missing[0] != "First?" || missing[1] != "Second?" {
		t.Errorf("Unanswered() order = %v, want section order", missing)
	}

	s.SetText("q1", "   ")
	if got := s.Unanswered(); len(got) != 2 {
		t.Errorf("whitespace-only answer counted as answered: %v", got)
	}

	s.SetText("q1", "done")
	if got := s.Unanswered(); len(got) != 1 || got[0] != "Second?" {
		t.Errorf("Unanswered() = %v, want [Second?]", got)
	}
}

// TestSessionBriefAnswers verifies the brief flattening: question text is
// carried alongside each answer and slot answers are joined, skipping
// cleared and empty slots.
func TestSessionBriefAnswers(t *testing.T) {
	s := twoSectionSession()
	s.SetText("q1", " spaced out ")
	s.SetSlot("q2", 0, "red")
	s.SetSlot("q2", 2, "blue")

	answers := s.BriefAnswers()
	if len(answers) != 2 {
		t.Fatalf("BriefAnswers() has %d entries, want 2", len(answers))
	}

	a1 := answers["q1"]
	if a1.QuestionText != "First?" {
		t.Errorf("q1 question text = %q, want %q", a1.QuestionText, "First?")
	}
	if a1.AnswerText != "spaced out" {
		t.Errorf("q1 answer = %q, want trimmed %q", a1.AnswerText, "spaced out")
	}

	a2 := answers["q2"]
	if a2.AnswerText != "red\nblue" {
		t.Errorf("q2 answer = %q, want slots joined with newline", a2.AnswerText)
	}
}

// TestValidateSlotImage verifies the per-slot MIME and size checks run
// before any upload is attempted.
func TestValidateSlotImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{name: "jpeg within limit", contentType: "image/jpeg", size: 1 << 20, wantErr: false},
		{name: "png within limit", contentType: "image/png", size: MaxSlotImageSize, wantErr: false},
		{name: "gif rejected", contentType: "image/gif", size: 1 << 20, wantErr: true},
		{name: "pdf rejected", contentType: "application/pdf", size: 1 << 20, wantErr: true},
		{name: "oversize jpeg rejected", contentType: "image/jpeg", size: MaxSlotImageSize + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlotImage(tt.contentType, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlotImage(%q, %d) error = %v, wantErr %v",
					tt.contentType, tt.size, err, tt.wantErr)
			}
		})
	}
}
