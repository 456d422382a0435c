package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"brandkit/internal/models"
)

// Seed populates the database with initial data: the immutable system
// questionnaire templates (one per project type) and, when dev is true, a
// default designer account. Safe to run repeatedly — existing rows are
// left alone.
func Seed(db *sql.DB, dev bool) error {
	if err := seedSystemTemplates(db); err != nil {
		return err
	}
	if !dev {
		return nil
	}
	return seedDesigner(db)
}

// seedDesigner creates a development designer if no users exist.
func seedDesigner(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO users (email, display_name, role)
		VALUES ($1, $2, $3)
	`, "designer@brandkit.local", "Studio Designer", string(models.RoleDesigner))
	if err != nil {
		return fmt.Errorf("seed insert designer: %w", err)
	}

	slog.Info("database seeded with default designer", "email", "designer@brandkit.local")
	return nil
}

// seedSystemTemplates inserts the default questionnaire for each project
// type if it is missing. System templates have a NULL owner and are never
// updated by the seeder — edits to defaults ship as new migrations.
func seedSystemTemplates(db *sql.DB) error {
	for _, tpl := range systemTemplates {
		var exists bool
		err := db.QueryRow(`
			SELECT EXISTS (
				SELECT 1 FROM questionnaire_templates WHERE owner_id IS NULL AND type = $1
			)
		`, string(tpl.Type)).Scan(&exists)
		if err != nil {
			return fmt.Errorf("seed check template %s: %w", tpl.Type, err)
		}
		if exists {
			continue
		}

		groups, err := json.Marshal(tpl.Groups)
		if err != nil {
			return fmt.Errorf("seed marshal template %s: %w", tpl.Type, err)
		}

		_, err = db.Exec(`
			INSERT INTO questionnaire_templates (owner_id, type, name, groups)
			VALUES (NULL, $1, $2, $3)
		`, string(tpl.Type), tpl.Name, groups)
		if err != nil {
			return fmt.Errorf("seed insert template %s: %w", tpl.Type, err)
		}

		slog.Info("seeded system questionnaire template", "type", tpl.Type)
	}
	return nil
}

// systemTemplates are the built-in questionnaires shipped with the app.
// Question IDs are stable — answers are keyed by them, so they must never
// change once shipped.
var systemTemplates = []models.Template{
	{
		Type: models.TemplateTypeBranding,
		Name: "Brand Discovery",
		Groups: []models.QuestionGroup{
			{
				ID:   "brand-basics",
				Name: "Business Basics",
				Questions: []models.Question{
					{ID: "brand-what", Text: "What does your business do?", Type: models.QuestionTypeTextarea},
					{ID: "brand-why", Text: "Why did you start it?", Type: models.QuestionTypeTextarea},
					{ID: "brand-audience", Text: "Who is your ideal customer?", Type: models.QuestionTypeTextarea},
				},
			},
			{
				ID:   "brand-personality",
				Name: "Brand Personality",
				Questions: []models.Question{
					{ID: "brand-words", Text: "List three words that should describe your brand.", Type: models.QuestionTypeTextList},
					{ID: "brand-avoid", Text: "Is there anything your brand should never feel like?", Type: models.QuestionTypeText},
					{ID: "brand-admire", Text: "Which brands do you admire, and why?", Type: models.QuestionTypeTextarea},
				},
			},
			{
				ID:   "brand-visuals",
				Name: "Visual Direction",
				Questions: []models.Question{
					{ID: "brand-colors", Text: "Are there colors you love or hate?", Type: models.QuestionTypeText},
					{ID: "brand-inspiration", Text: "Upload any visual inspiration you already have.", Type: models.QuestionTypeImageUpload},
					{ID: "brand-existing", Text: "Upload your current logo or materials, if any.", Type: models.QuestionTypeFile, AcceptedFileTypes: ".png,.jpg,.pdf,.ai,.eps"},
				},
			},
		},
	},
	{
		Type: models.TemplateTypeWebsite,
		Name: "Website Kickoff",
		Groups: []models.QuestionGroup{
			{
				ID:   "site-goals",
				Name: "Goals",
				Questions: []models.Question{
					{ID: "site-goal", Text: "What is the primary goal of your website?", Type: models.QuestionTypeTextarea},
					{ID: "site-action", Text: "What should a visitor do before leaving?", Type: models.QuestionTypeText},
				},
			},
			{
				ID:   "site-content",
				Name: "Content & Structure",
				Questions: []models.Question{
					{ID: "site-pages", Text: "Which pages do you expect to need?", Type: models.QuestionTypeTextarea},
					{ID: "site-copy", Text: "Do you have copy written, or do you need help?", Type: models.QuestionTypeText},
					{ID: "site-examples", Text: "List up to three websites you admire.", Type: models.QuestionTypeTextList},
				},
			},
		},
	},
	{
		Type: models.TemplateTypeApp,
		Name: "App Discovery",
		Groups: []models.QuestionGroup{
			{
				ID:   "app-product",
				Name: "Product",
				Questions: []models.Question{
					{ID: "app-problem", Text: "What problem does your app solve?", Type: models.QuestionTypeTextarea},
					{ID: "app-users", Text: "Describe your typical user.", Type: models.QuestionTypeTextarea},
					{ID: "app-competitors", Text: "List up to three competing apps.", Type: models.QuestionTypeTextList},
				},
			},
			{
				ID:   "app-scope",
				Name: "Scope",
				Questions: []models.Question{
					{ID: "app-platforms", Text: "Which platforms do you need at launch?", Type: models.QuestionTypeText},
					{ID: "app-must", Text: "What must exist in version one?", Type: models.QuestionTypeTextarea},
				},
			},
		},
	},
}
