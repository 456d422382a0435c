// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"brandkit/internal/models"
)

// ErrAnswerNotFound is returned when an answer edit targets a question ID
// the brief never collected.
var ErrAnswerNotFound = errors.New("answer not found in brief")

// BriefStore handles creative brief persistence. Briefs are append-only:
// every wizard submission creates a new row, and only individual answer
// texts may be edited afterwards.
type BriefStore struct {
	db *sql.DB
}

// NewBriefStore creates a new BriefStore with the given database connection.
func NewBriefStore(db *sql.DB) *BriefStore {
	return &BriefStore{db: db}
}

// Create inserts a new brief and returns it with the generated ID.
func (s *BriefStore) Create(b *models.CreativeBrief) (*models.CreativeBrief, error) {
	answers, err := json.Marshal(b.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal brief answers: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO creative_briefs (project_id, type, answers)
		VALUES ($1, $2, $3)
		RETURNING id, project_id, type, answers, created_at
	`, b.ProjectID, b.Type, answers)
	result, err := scanBrief(row)
	if err != nil {
		return nil, fmt.Errorf("create brief: %w", err)
	}
	return result, nil
}

// ListByProject returns all briefs for a project, newest first.
func (s *BriefStore) ListByProject(projectID uuid.UUID) ([]models.CreativeBrief, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, type, answers, created_at
		FROM creative_briefs
		WHERE project_id = $1
		ORDER BY created_at DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list briefs: %w", err)
	}
	defer rows.Close()

	var items []models.CreativeBrief
	for rows.Next() {
		b, err := scanBrief(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brief: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a brief by UUID. Returns nil if not found.
func (s *BriefStore) FindByID(id uuid.UUID) (*models.CreativeBrief, error) {
	row := s.db.QueryRow(`
		SELECT id, project_id, type, answers, created_at
		FROM creative_briefs WHERE id = $1
	`, id)
	b, err := scanBrief(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brief by id: %w", err)
	}
	return b, nil
}

// UpdateAnswer replaces the answer text for one question in a brief. The
// question text is left as captured at submission time.
func (s *BriefStore) UpdateAnswer(id uuid.UUID, questionID, answerText string) error {
	b, err := s.FindByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrAnswerNotFound
	}
	answer, ok := b.Answers[questionID]
	if !ok {
		return ErrAnswerNotFound
	}
	answer.AnswerText = answerText
	b.Answers[questionID] = answer

	answers, err := json.Marshal(b.Answers)
	if err != nil {
		return fmt.Errorf("marshal brief answers: %w", err)
	}
	_, err = s.db.Exec(`
		UPDATE creative_briefs SET answers = $1 WHERE id = $2
	`, answers, id)
	if err != nil {
		return fmt.Errorf("update brief answer: %w", err)
	}
	return nil
}

func scanBrief(row scanner) (*models.CreativeBrief, error) {
	b := &models.CreativeBrief{}
	var answers []byte
	err := row.Scan(&b.ID, &b.ProjectID, &b.Type, &answers, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(answers, &b.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal brief answers: %w", err)
	}
	return b, nil
}
