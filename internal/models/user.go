// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the system.
type Role string

const (
	// RoleDesigner is a studio member who owns clients, projects, and
	// questionnaire templates.
	RoleDesigner Role = "designer"

	// RoleClient is an end client who answers wizards and views guidelines
	// through the project portal.
	RoleClient Role = "client"
)

// User represents an account in the system. Designer accounts are
// provisioned by the external identity service; client accounts are
// implicit and carry only portal-scoped sessions.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsDesigner returns true if the user holds the designer role.
func (u *User) IsDesigner() bool {
	return u.Role == RoleDesigner
}
