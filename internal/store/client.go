// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brandkit/internal/models"
)

// ClientStore handles all client-related database operations.
type ClientStore struct {
	db *sql.DB
}

// NewClientStore creates a new ClientStore with the given database connection.
func NewClientStore(db *sql.DB) *ClientStore {
	return &ClientStore{db: db}
}

// ListByDesigner returns all clients belonging to a designer, newest first.
func (s *ClientStore) ListByDesigner(designerID uuid.UUID) ([]models.Client, error) {
	rows, err := s.db.Query(`
		SELECT id, designer_id, name, email, company, phone, created_at, updated_at
		FROM clients
		WHERE designer_id = $1
		ORDER BY created_at DESC
	`, designerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var items []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.DesignerID, &c.Name, &c.Email, &c.Company, &c.Phone,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a client by UUID. Returns nil if not found.
func (s *ClientStore) FindByID(id uuid.UUID) (*models.Client, error) {
	c := &models.Client{}
	err := s.db.QueryRow(`
		SELECT id, designer_id, name, email, company, phone, created_at, updated_at
		FROM clients WHERE id = $1
	`, id).Scan(
		&c.ID, &c.DesignerID, &c.Name, &c.Email, &c.Company, &c.Phone,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client by id: %w", err)
	}
	return c, nil
}

// Create inserts a new client and returns it with the generated ID.
func (s *ClientStore) Create(c *models.Client) (*models.Client, error) {
	result := &models.Client{}
	err := s.db.QueryRow(`
		INSERT INTO clients (designer_id, name, email, company, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, designer_id, name, email, company, phone, created_at, updated_at
	`, c.DesignerID, c.Name, c.Email, c.Company, c.Phone).Scan(
		&result.ID, &result.DesignerID, &result.Name, &result.Email,
		&result.Company, &result.Phone, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return result, nil
}

// Update modifies an existing client's contact details.
func (s *ClientStore) Update(c *models.Client) error {
	_, err := s.db.Exec(`
		UPDATE clients SET name = $1, email = $2, company = $3, phone = $4, updated_at = NOW()
		WHERE id = $5
	`, c.Name, c.Email, c.Company, c.Phone, c.ID)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes a client. Projects cascade at the database level.
func (s *ClientStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
