package handlers

import (
	"strings"
	"unicode/utf8"

	"brandkit/internal/models"
)

// Validation limits for client, project and template fields.
const (
	maxNameLen         = 200
	maxEmailLen        = 320
	maxTemplateNameLen = 200
	maxQuestionLen     = 1_000
	maxAnswerLen       = 20_000
	maxGroups          = 20
	maxGroupQuestions  = 50
)

// validateClient checks client form inputs and returns the first error found.
func validateClient(name, email string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "Email address is not valid."
	}
	return ""
}

// validateProject checks project form inputs and returns the first error found.
func validateProject(name, projectType string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Project name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Project name is too long (max 200 characters)."
	}
	if !validTemplateType(projectType) {
		return "Project type must be branding, website, or app."
	}
	return ""
}

// validTemplateType reports whether s names a known project/template type.
func validTemplateType(s string) bool {
	switch models.TemplateType(s) {
	case models.TemplateTypeBranding, models.TemplateTypeWebsite, models.TemplateTypeApp:
		return true
	}
	return false
}

// validateTemplateShape checks the structure of a submitted questionnaire
// template and returns the first error found.
func validateTemplateShape(name string, groups []models.QuestionGroup) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Template name is required."
	}
	if utf8.RuneCountInString(name) > maxTemplateNameLen {
		return "Template name is too long (max 200 characters)."
	}
	if len(groups) > maxGroups {
		return "Too many question groups (max 20)."
	}
	for _, g := range groups {
		if len(g.Questions) > maxGroupQuestions {
			return "Too many questions in one group (max 50)."
		}
		for _, q := range g.Questions {
			if strings.TrimSpace(q.ID) == "" {
				return "Every question needs a stable id."
			}
			if strings.TrimSpace(q.Text) == "" {
				return "Every question needs its prompt text."
			}
			if utf8.RuneCountInString(q.Text) > maxQuestionLen {
				return "Question text is too long (max 1,000 characters)."
			}
			switch q.Type {
			case models.QuestionTypeText, models.QuestionTypeTextarea,
				models.QuestionTypeFile, models.QuestionTypeImageUpload,
				models.QuestionTypeTextList:
			default:
				return "Unknown question type."
			}
		}
	}
	return ""
}
