package store

import (
	"errors"
	"testing"

	"brandkit/internal/models"
)

func TestBriefCreateAndEditAnswer(t *testing.T) {
	db := testDB(t)
	s := NewBriefStore(db)
	project := testProject(t, db)

	created, err := s.Create(&models.CreativeBrief{
		ProjectID: project.ID,
		Type:      models.TemplateTypeBranding,
		Answers: map[string]models.BriefAnswer{
			"q1": {QuestionText: "What do you sell?", AnswerText: "Coffee"},
			"q2": {QuestionText: "Who buys it?", AnswerText: ""},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.UpdateAnswer(created.ID, "q2", "Remote workers"); err != nil {
		t.Fatalf("UpdateAnswer: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Answers["q2"].AnswerText != "Remote workers" {
		t.Errorf("q2 answer = %q, want updated text", found.Answers["q2"].AnswerText)
	}
	// The captured question text is untouched by answer edits.
	if found.Answers["q2"].QuestionText != "Who buys it?" {
		t.Errorf("q2 question text changed: %q", found.Answers["q2"].QuestionText)
	}

	if err := s.UpdateAnswer(created.ID, "q99", "x"); !errors.Is(err, ErrAnswerNotFound) {
		t.Errorf("UpdateAnswer unknown question: got %v, want ErrAnswerNotFound", err)
	}

	briefs, err := s.ListByProject(project.ID)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(briefs) != 1 {
		t.Errorf("got %d briefs, want 1", len(briefs))
	}
}
