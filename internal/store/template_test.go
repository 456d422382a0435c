// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"brandkit/internal/database"
	"brandkit/internal/models"
)

func TestTemplateCreateAndResolve(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)
	project := testProject(t, db)
	ownerID := project.DesignerID

	t.Cleanup(func() { cleanTemplates(t, db, "Custom Branding") })

	created, err := s.Create(&models.Template{
		OwnerID: &ownerID,
		Type:    models.TemplateTypeBranding,
		Name:    "Custom Branding",
		Groups: []models.QuestionGroup{
			{ID: "g1", Name: "Basics", Questions: []models.Question{
				{ID: "q1", Text: "What do you sell?", Type: models.QuestionTypeText},
			}},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create returned zero ID")
	}
	if created.IsSystem() {
		t.Error("owned template reported as system")
	}

	// The owner's template wins over the system default for the same type.
	resolved, err := s.FindForProject(ownerID, models.TemplateTypeBranding)
	if err != nil {
		t.Fatalf("FindForProject: %v", err)
	}
	if resolved == nil || resolved.ID != created.ID {
		t.Errorf("FindForProject resolved wrong template: %+v", resolved)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || len(found.Groups) != 1 || found.Groups[0].Questions[0].ID != "q1" {
		t.Errorf("FindByID lost group data: %+v", found)
	}
}

func TestTemplateFallsBackToSystemDefault(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)
	project := testProject(t, db)

	// Seed guarantees the system defaults exist.
	if err := database.Seed(db, false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resolved, err := s.FindForProject(project.DesignerID, models.TemplateTypeWebsite)
	if err != nil {
		t.Fatalf("FindForProject: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected system default template")
	}
	if !resolved.IsSystem() {
		t.Errorf("expected system template, got owner %v", resolved.OwnerID)
	}
}

func TestSystemTemplateImmutable(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	if err := database.Seed(db, false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var id uuid.UUID
	err := db.QueryRow(`
		SELECT id FROM questionnaire_templates WHERE owner_id IS NULL LIMIT 1
	`).Scan(&id)
	if err != nil {
		t.Fatalf("load system template: %v", err)
	}

	system, err := s.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}

	system.Name = "Hijacked"
	if err := s.Update(system); !errors.Is(err, ErrSystemTemplate) {
		t.Errorf("Update system template: got %v, want ErrSystemTemplate", err)
	}
	if err := s.Delete(id); !errors.Is(err, ErrSystemTemplate) {
		t.Errorf("Delete system template: got %v, want ErrSystemTemplate", err)
	}
}
