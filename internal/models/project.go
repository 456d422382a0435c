// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus tracks where a project sits in the onboarding flow.
type ProjectStatus string

const (
	ProjectStatusOnboarding ProjectStatus = "onboarding"
	ProjectStatusActive     ProjectStatus = "active"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// Project ties a client to a body of work: one creative brief per wizard
// run, categorized brand assets, and a brand guidelines document.
// AccessCodeHash is the bcrypt hash of the portal code the client uses to
// open the wizard; it is never serialized.
type Project struct {
	ID             uuid.UUID     `json:"id"`
	DesignerID     uuid.UUID     `json:"designer_id"`
	ClientID       uuid.UUID     `json:"client_id"`
	Name           string        `json:"name"`
	Type           TemplateType  `json:"type"`
	Status         ProjectStatus `json:"status"`
	AccessCodeHash string        `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// IsArchived returns true if the project has been archived.
func (p *Project) IsArchived() bool {
	return p.Status == ProjectStatusArchived
}
