// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateType categorizes questionnaire templates by the kind of project
// they onboard.
type TemplateType string

const (
	TemplateTypeBranding TemplateType = "branding"
	TemplateTypeWebsite  TemplateType = "website"
	TemplateTypeApp      TemplateType = "app"
)

// QuestionType determines how a question is captured in the wizard.
type QuestionType string

const (
	QuestionTypeText        QuestionType = "text"
	QuestionTypeTextarea    QuestionType = "textarea"
	QuestionTypeFile        QuestionType = "file"
	QuestionTypeImageUpload QuestionType = "imageUpload"
	QuestionTypeTextList    QuestionType = "textList"
)

// Question is a single prompt within a group. The ID is assigned at
// creation and survives edits and reorders — answers are keyed by it, so
// reordering questions never orphans collected answers.
type Question struct {
	ID                string       `json:"id"`
	Text              string       `json:"text"`
	Type              QuestionType `json:"type"`
	AcceptedFileTypes string       `json:"accepted_file_types,omitempty"`
}

// QuestionGroup is a named, ordered set of questions. The wizard presents
// one group per step.
type QuestionGroup struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Template is a designer-authored, reusable questionnaire. System default
// templates have a nil OwnerID and are immutable; they seed the wizard when
// a designer has not customized one for the project type. Questions holds
// the legacy flat layout used before groups existed; templates saved in
// that shape carry their questions there and no groups.
type Template struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   *uuid.UUID      `json:"owner_id,omitempty"`
	Type      TemplateType    `json:"type"`
	Name      string          `json:"name"`
	Groups    []QuestionGroup `json:"groups"`
	Questions []Question      `json:"questions,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsSystem returns true for the built-in default templates, which cannot
// be edited or deleted.
func (t *Template) IsSystem() bool {
	return t.OwnerID == nil
}

// QuestionCount returns the total number of questions across all groups.
func (t *Template) QuestionCount() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Questions)
	}
	return n
}

// MoveGroup reorders the group at index from to index to. Out-of-range
// indices are ignored. Question and group identity is carried by IDs, so
// reordering is a plain splice.
func (t *Template) MoveGroup(from, to int) {
	moveItem(t.Groups, from, to)
}

// MoveQuestion reorders a question within the group at groupIdx.
func (t *Template) MoveQuestion(groupIdx, from, to int) {
	if groupIdx < 0 || groupIdx >= len(t.Groups) {
		return
	}
	moveItem(t.Groups[groupIdx].Questions, from, to)
}

// moveItem splices the element at from out of the slice and reinserts it
// at to, shifting everything between.
func moveItem[T any](items []T, from, to int) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return
	}
	item := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = item
}
