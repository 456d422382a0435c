// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brandkit/internal/models"
)

// GuidelinesStore persists the brand guidelines document, one jsonb row per
// project. Writes are last-write-wins on the whole document.
type GuidelinesStore struct {
	db *sql.DB
}

// NewGuidelinesStore creates a new GuidelinesStore with the given database connection.
func NewGuidelinesStore(db *sql.DB) *GuidelinesStore {
	return &GuidelinesStore{db: db}
}

// Get retrieves a project's guidelines document. Returns nil if none has
// been saved. Color spaces are derived on the way out so documents saved
// before RGB/CMYK were stored still present full palette entries.
func (s *GuidelinesStore) Get(projectID uuid.UUID) (*models.BrandGuidelines, error) {
	var raw []byte
	var updatedAt time.Time
	err := s.db.QueryRow(`
		SELECT doc, updated_at FROM brand_guidelines WHERE project_id = $1
	`, projectID).Scan(&raw, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get guidelines: %w", err)
	}

	g := &models.BrandGuidelines{}
	if err := json.Unmarshal(raw, g); err != nil {
		return nil, fmt.Errorf("unmarshal guidelines: %w", err)
	}
	g.ProjectID = projectID
	g.UpdatedAt = updatedAt
	g.DeriveColors()
	return g, nil
}

// Put saves a project's guidelines document, replacing any previous one.
// Derived color spaces are recomputed before the write so stored values
// always match the hex.
func (s *GuidelinesStore) Put(g *models.BrandGuidelines) error {
	g.DeriveColors()
	doc, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal guidelines: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO brand_guidelines (project_id, doc)
		VALUES ($1, $2)
		ON CONFLICT (project_id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, g.ProjectID, doc)
	if err != nil {
		return fmt.Errorf("put guidelines: %w", err)
	}
	return nil
}

// Delete removes a project's guidelines document.
func (s *GuidelinesStore) Delete(projectID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM brand_guidelines WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("delete guidelines: %w", err)
	}
	return nil
}
