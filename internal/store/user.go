// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the persistence layer. Each store wraps a shared
// *sql.DB and exposes typed operations for one aggregate.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brandkit/internal/models"
)

// UserStore handles all user-related database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByID retrieves a user by UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, email, display_name, role, photo_url, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail retrieves a user by email address. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, email, display_name, role, photo_url, created_at, updated_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Create inserts a new user and returns it with the generated ID.
func (s *UserStore) Create(u *models.User) (*models.User, error) {
	result := &models.User{}
	err := s.db.QueryRow(`
		INSERT INTO users (email, display_name, role, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, display_name, role, photo_url, created_at, updated_at
	`, u.Email, u.DisplayName, u.Role, u.PhotoURL).Scan(
		&result.ID, &result.Email, &result.DisplayName, &result.Role,
		&result.PhotoURL, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return result, nil
}

// UpdateProfile modifies a user's display name and photo URL.
func (s *UserStore) UpdateProfile(id uuid.UUID, displayName string, photoURL *string) error {
	_, err := s.db.Exec(`
		UPDATE users SET display_name = $1, photo_url = $2, updated_at = NOW()
		WHERE id = $3
	`, displayName, photoURL, id)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}
