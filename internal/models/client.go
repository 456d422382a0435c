// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a designer's customer. A client can own any number of
// projects and receives wizard invitations by email.
type Client struct {
	ID         uuid.UUID `json:"id"`
	DesignerID uuid.UUID `json:"designer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    *string   `json:"company,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
