// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package wizard turns a questionnaire template into a navigable multi-step
// flow: ordered sections of display-ready questions, a session state
// machine, and answer capture with per-type rules. Sessions are transient —
// they live in Valkey and nothing is persisted until submit.
package wizard

import (
	"strings"

	"brandkit/internal/models"
)

// DisplayQuestion is a question flattened for rendering: the stable id the
// answer will be keyed by, the prompt text, and the input type.
type DisplayQuestion struct {
	Name  string              `json:"name"`
	Label string              `json:"label"`
	Type  models.QuestionType `json:"type"`
}

// Section is one wizard step: a titled, ordered list of questions.
type Section struct {
	Title     string            `json:"title"`
	Questions []DisplayQuestion `json:"questions"`
}

// generalSectionTitle names the synthetic group wrapped around a flat
// (ungrouped) question list.
const generalSectionTitle = "General Questions"

// ExpandTemplate converts a template's groups into ordered sections.
// Groups that resolve to zero questions are dropped — an empty step would
// strand the user on a blank page. A flat question list (no groups) is
// wrapped in a single "General Questions" section. If nothing usable
// remains, the hardcoded default set for the template type is substituted
// so the wizard is never empty.
func ExpandTemplate(t *models.Template) []Section {
	if t == nil {
		return DefaultSections(models.TemplateTypeBranding)
	}

	groups := t.Groups
	if len(groups) == 0 && len(t.Questions) > 0 {
		groups = []models.QuestionGroup{{Name: generalSectionTitle, Questions: t.Questions}}
	}

	var sections []Section
	for _, g := range groups {
		if len(g.Questions) == 0 {
			continue
		}
		title := strings.TrimSpace(g.Name)
		if title == "" {
			title = generalSectionTitle
		}
		sec := Section{Title: title}
		for _, q := range g.Questions {
			sec.Questions = append(sec.Questions, DisplayQuestion{
				Name:  q.ID,
				Label: q.Text,
				Type:  q.Type,
			})
		}
		sections = append(sections, sec)
	}

	if len(sections) == 0 {
		return DefaultSections(t.Type)
	}
	return sections
}

// DefaultSections returns the built-in fallback question set used when a
// template fails to load or expands to nothing.
func DefaultSections(t models.TemplateType) []Section {
	questions := defaultQuestions[t]
	if len(questions) == 0 {
		questions = defaultQuestions[models.TemplateTypeBranding]
	}
	return []Section{{Title: generalSectionTitle, Questions: questions}}
}

// defaultQuestions is the hardcoded fallback per project type.
var defaultQuestions = map[models.TemplateType][]DisplayQuestion{
	models.TemplateTypeBranding: {
		{Name: "default-brand-story", Label: "Tell us about your business and what it stands for.", Type: models.QuestionTypeTextarea},
		{Name: "default-brand-audience", Label: "Who is your target audience?", Type: models.QuestionTypeTextarea},
		{Name: "default-brand-words", Label: "List three words that should describe your brand.", Type: models.QuestionTypeTextList},
		{Name: "default-brand-inspiration", Label: "Upload any visual inspiration you already have.", Type: models.QuestionTypeImageUpload},
	},
	models.TemplateTypeWebsite: {
		{Name: "default-site-goal", Label: "What is the primary goal of your website?", Type: models.QuestionTypeTextarea},
		{Name: "default-site-pages", Label: "Which pages do you expect to need?", Type: models.QuestionTypeTextarea},
		{Name: "default-site-examples", Label: "List up to three websites you admire.", Type: models.QuestionTypeTextList},
	},
	models.TemplateTypeApp: {
		{Name: "default-app-problem", Label: "What problem does your app solve?", Type: models.QuestionTypeTextarea},
		{Name: "default-app-users", Label: "Describe your typical user.", Type: models.QuestionTypeTextarea},
		{Name: "default-app-competitors", Label: "List up to three competing apps.", Type: models.QuestionTypeTextList},
	},
}
