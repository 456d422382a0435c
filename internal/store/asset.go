// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"brandkit/internal/models"
)

// AssetStore manages the per-category file lists of a project. Each
// (project, category) pair owns one row with a jsonb array of asset
// records; appends merge into the stored list so concurrent confirms from
// different categories never clobber each other.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore with the given database connection.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

// ListFiles returns the files stored under one category, in append order.
// A category with no row yields an empty list.
func (s *AssetStore) ListFiles(projectID uuid.UUID, category models.AssetCategory) ([]models.AssetRecord, error) {
	var raw []byte
	err := s.db.QueryRow(`
		SELECT files FROM project_assets WHERE project_id = $1 AND category = $2
	`, projectID, string(category)).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list asset files: %w", err)
	}

	var files []models.AssetRecord
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("unmarshal asset files: %w", err)
	}
	return files, nil
}

// ListAll returns every category's files for a project, keyed by category.
func (s *AssetStore) ListAll(projectID uuid.UUID) (map[models.AssetCategory][]models.AssetRecord, error) {
	rows, err := s.db.Query(`
		SELECT category, files FROM project_assets WHERE project_id = $1
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project assets: %w", err)
	}
	defer rows.Close()

	result := make(map[models.AssetCategory][]models.AssetRecord)
	for rows.Next() {
		var category string
		var raw []byte
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, fmt.Errorf("scan project assets: %w", err)
		}
		var files []models.AssetRecord
		if err := json.Unmarshal(raw, &files); err != nil {
			return nil, fmt.Errorf("unmarshal asset files: %w", err)
		}
		result[models.AssetCategory(category)] = files
	}
	return result, rows.Err()
}

// AppendFiles adds records to the end of a category's list. The append is
// a single jsonb concatenation so the stored list is never read into the
// application and written back wholesale.
func (s *AssetStore) AppendFiles(projectID uuid.UUID, category models.AssetCategory, files []models.AssetRecord) error {
	if len(files) == 0 {
		return nil
	}
	data, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("marshal asset files: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO project_assets (project_id, category, files)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id, category)
		DO UPDATE SET files = project_assets.files || EXCLUDED.files, updated_at = NOW()
	`, projectID, string(category), data)
	if err != nil {
		return fmt.Errorf("append asset files: %w", err)
	}
	return nil
}

// DeleteFileByURL removes every record matching the URL from a category's
// list and returns the removed records so the caller can delete the stored
// objects. Duplicate URLs are all removed in one call.
func (s *AssetStore) DeleteFileByURL(projectID uuid.UUID, category models.AssetCategory, url string) ([]models.AssetRecord, error) {
	files, err := s.ListFiles(projectID, category)
	if err != nil {
		return nil, err
	}

	var kept, removed []models.AssetRecord
	for _, f := range files {
		if f.URL == url {
			removed = append(removed, f)
		} else {
			kept = append(kept, f)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return nil, fmt.Errorf("marshal asset files: %w", err)
	}
	if kept == nil {
		data = []byte("[]")
	}
	_, err = s.db.Exec(`
		UPDATE project_assets SET files = $1, updated_at = NOW()
		WHERE project_id = $2 AND category = $3
	`, data, projectID, string(category))
	if err != nil {
		return nil, fmt.Errorf("delete asset file: %w", err)
	}
	return removed, nil
}

// DeleteCategory drops a category's whole list.
func (s *AssetStore) DeleteCategory(projectID uuid.UUID, category models.AssetCategory) error {
	_, err := s.db.Exec(`
		DELETE FROM project_assets WHERE project_id = $1 AND category = $2
	`, projectID, string(category))
	if err != nil {
		return fmt.Errorf("delete asset category: %w", err)
	}
	return nil
}
