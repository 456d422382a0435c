// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"brandkit/internal/models"
)

// ProjectStore handles all project-related database operations, including
// the portal access code used by clients to open the onboarding wizard.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// ListByDesigner returns all projects belonging to a designer, newest first.
func (s *ProjectStore) ListByDesigner(designerID uuid.UUID) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, designer_id, client_id, name, type, status, access_code_hash,
		       created_at, updated_at
		FROM projects
		WHERE designer_id = $1
		ORDER BY created_at DESC
	`, designerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.DesignerID, &p.ClientID, &p.Name, &p.Type, &p.Status,
			&p.AccessCodeHash, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// ListByClient returns all projects for one client, newest first.
func (s *ProjectStore) ListByClient(clientID uuid.UUID) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, designer_id, client_id, name, type, status, access_code_hash,
		       created_at, updated_at
		FROM projects
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects by client: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.DesignerID, &p.ClientID, &p.Name, &p.Type, &p.Status,
			&p.AccessCodeHash, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a project by UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p := &models.Project{}
	err := s.db.QueryRow(`
		SELECT id, designer_id, client_id, name, type, status, access_code_hash,
		       created_at, updated_at
		FROM projects WHERE id = $1
	`, id).Scan(
		&p.ID, &p.DesignerID, &p.ClientID, &p.Name, &p.Type, &p.Status,
		&p.AccessCodeHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the generated ID.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	result := &models.Project{}
	err := s.db.QueryRow(`
		INSERT INTO projects (designer_id, client_id, name, type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, designer_id, client_id, name, type, status, access_code_hash,
		          created_at, updated_at
	`, p.DesignerID, p.ClientID, p.Name, p.Type, p.Status).Scan(
		&result.ID, &result.DesignerID, &result.ClientID, &result.Name,
		&result.Type, &result.Status, &result.AccessCodeHash,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update modifies a project's name, type and status.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET name = $1, type = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`, p.Name, p.Type, p.Status, p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project. Briefs, assets and guidelines cascade at the
// database level; stored objects are removed by the caller.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// SetAccessCode hashes the portal code with bcrypt and stores it on the
// project. The plain code is only ever shown once, to the designer who
// generated it.
func (s *ProjectStore) SetAccessCode(id uuid.UUID, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash access code: %w", err)
	}
	_, err = s.db.Exec(`
		UPDATE projects SET access_code_hash = $1, updated_at = NOW()
		WHERE id = $2
	`, string(hash), id)
	if err != nil {
		return fmt.Errorf("set access code: %w", err)
	}
	return nil
}

// VerifyAccessCode checks a portal code against the stored hash. A project
// with no code set never matches.
func (s *ProjectStore) VerifyAccessCode(id uuid.UUID, code string) (bool, error) {
	var hash string
	err := s.db.QueryRow(`SELECT access_code_hash FROM projects WHERE id = $1`, id).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load access code: %w", err)
	}
	if hash == "" {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil, nil
}
