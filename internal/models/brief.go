// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BriefAnswer pairs the question text as it read at submission time with
// the collected answer. The question text is denormalized so the brief
// stays readable even if the template is later edited.
type BriefAnswer struct {
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
}

// CreativeBrief is the persisted output of a completed wizard run. Briefs
// are append-only: one is created per submission and never deleted, though
// a designer may edit individual answers afterwards.
type CreativeBrief struct {
	ID        uuid.UUID              `json:"id"`
	ProjectID uuid.UUID              `json:"project_id"`
	Type      TemplateType           `json:"type"`
	Answers   map[string]BriefAnswer `json:"answers"`
	CreatedAt time.Time              `json:"created_at"`
}
