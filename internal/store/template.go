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

// ErrSystemTemplate is returned when an update or delete targets one of the
// built-in default templates, which are immutable.
var ErrSystemTemplate = errors.New("system templates cannot be modified")

// TemplateStore handles questionnaire template persistence. Groups and the
// legacy flat question list are stored as jsonb columns.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// ListForOwner returns the templates visible to a designer: their own plus
// the system defaults, own templates first.
func (s *TemplateStore) ListForOwner(ownerID uuid.UUID) ([]models.Template, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, type, name, groups, questions, created_at, updated_at
		FROM questionnaire_templates
		WHERE owner_id = $1 OR owner_id IS NULL
		ORDER BY owner_id NULLS LAST, type
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var items []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a template by UUID. Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, type, name, groups, questions, created_at, updated_at
		FROM questionnaire_templates WHERE id = $1
	`, id)
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// FindForProject resolves the template a wizard run should use: the
// designer's own template for the project type, or the system default when
// none exists. Returns nil if neither is present.
func (s *TemplateStore) FindForProject(ownerID uuid.UUID, projectType models.TemplateType) (*models.Template, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, type, name, groups, questions, created_at, updated_at
		FROM questionnaire_templates
		WHERE (owner_id = $1 OR owner_id IS NULL) AND type = $2
		ORDER BY owner_id NULLS LAST
		LIMIT 1
	`, ownerID, string(projectType))
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template for project: %w", err)
	}
	return t, nil
}

// Create inserts a new designer-owned template and returns it with the
// generated ID.
func (s *TemplateStore) Create(t *models.Template) (*models.Template, error) {
	groups, questions, err := marshalTemplate(t)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO questionnaire_templates (owner_id, type, name, groups, questions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, type, name, groups, questions, created_at, updated_at
	`, t.OwnerID, t.Type, t.Name, groups, questions)
	result, err := scanTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return result, nil
}

// Update modifies an existing template. System templates are refused.
func (s *TemplateStore) Update(t *models.Template) error {
	if t.IsSystem() {
		return ErrSystemTemplate
	}

	groups, questions, err := marshalTemplate(t)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE questionnaire_templates
		SET name = $1, groups = $2, questions = $3, updated_at = NOW()
		WHERE id = $4 AND owner_id IS NOT NULL
	`, t.Name, groups, questions, t.ID)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete removes a designer-owned template. System templates are refused;
// the guard is in both the check and the WHERE clause.
func (s *TemplateStore) Delete(id uuid.UUID) error {
	t, err := s.FindByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	if t.IsSystem() {
		return ErrSystemTemplate
	}

	_, err = s.db.Exec(`
		DELETE FROM questionnaire_templates WHERE id = $1 AND owner_id IS NOT NULL
	`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func marshalTemplate(t *models.Template) (groups, questions []byte, err error) {
	groups, err = json.Marshal(t.Groups)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal template groups: %w", err)
	}
	questions, err = json.Marshal(t.Questions)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal template questions: %w", err)
	}
	return groups, questions, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*models.Template, error) {
	t := &models.Template{}
	var groups, questions []byte
	err := row.Scan(&t.ID, &t.OwnerID, &t.Type, &t.Name, &groups, &questions,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(groups, &t.Groups); err != nil {
		return nil, fmt.Errorf("unmarshal template groups: %w", err)
	}
	if err := json.Unmarshal(questions, &t.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal template questions: %w", err)
	}
	return t, nil
}
