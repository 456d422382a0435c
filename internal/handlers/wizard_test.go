package handlers

import (
	"testing"

	"github.com/google/uuid"

	"brandkit/internal/models"
	"brandkit/internal/wizard"
)

func twoStepSession() *wizard.Session {
	sections := []wizard.Section{
		{Title: "Basics", Questions: []wizard.DisplayQuestion{
			{Name: "q1", Label: "What do you sell?", Type: models.QuestionTypeText},
		}},
		{Title: "Style", Questions: []wizard.DisplayQuestion{
			{Name: "q2", Label: "Describe your style.", Type: models.QuestionTypeTextarea},
		}},
	}
	return wizard.NewSession(uuid.New(), uuid.New(), models.TemplateTypeBranding, sections)
}

func TestWizardViewActiveStep(t *testing.T) {
	ws := twoStepSession()
	view := wizardView(ws)

	if view["in_review"] != false {
		t.Error("fresh session should not be in review")
	}
	if view["steps"] != 2 {
		t.Errorf("steps = %v, want 2", view["steps"])
	}
	sec, ok := view["section"].(*wizard.Section)
	if !ok || sec.Title != "Basics" {
		t.Errorf("section = %+v, want Basics", view["section"])
	}
	if _, present := view["unanswered"]; present {
		t.Error("unanswered should only appear in review")
	}
}

func TestWizardViewReview(t *testing.T) {
	ws := twoStepSession()
	ws.SetText("q1", "Specialty coffee")
	ws.Next()
	ws.Next()

	view := wizardView(ws)
	if view["in_review"] != true {
		t.Error("session should be in review after advancing past the last step")
	}
	if _, present := view["section"]; present {
		t.Error("review has no active section")
	}
	missing, ok := view["unanswered"].([]string)
	if !ok || len(missing) != 1 || missing[0] != "Describe your style." {
		t.Errorf("unanswered = %v", view["unanswered"])
	}
}
