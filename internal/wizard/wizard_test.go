package wizard

import (
	"testing"

	"brandkit/internal/models"
)

// TestExpandTemplatePreservesOrder verifies that groups become sections in
// order and question order within each group is preserved.
func TestExpandTemplatePreservesOrder(t *testing.T) {
	tpl := &models.Template{
		Type: models.TemplateTypeBranding,
		Groups: []models.QuestionGroup{
			{
				ID:   "g1",
				Name: "About You",
				Questions: []models.Question{
					{ID: "q1", Text: "First", Type: models.QuestionTypeText},
					{ID: "q2", Text: "Second", Type: models.QuestionTypeTextarea},
				},
			},
			{
				ID:   "g2",
				Name: "Style",
				Questions: []models.Question{
					{ID: "q3", Text: "Third", Type: models.QuestionTypeTextList},
				},
			},
		},
	}

	sections := ExpandTemplate(tpl)
	if len(sections) != 2 {
		t.Fatalf("ExpandTemplate returned %d sections, want 2", len(sections))
	}
	if sections[0].Title != "About You" || sections[1].Title != "Style" {
		t.Errorf("section titles = %q, %q; want group names in order", sections[0].Title, sections[1].Title)
	}

	wantOrder := []string{"q1", "q2"}
	for i, q := range sections[0].Questions {
		if q.Name != wantOrder[i] {
			t.Errorf("section 0 question %d = %q, want %q", i, q.Name, wantOrder[i])
		}
	}
	if sections[0].Questions[1].Label != "Second" {
		t.Errorf("question label = %q, want %q", sections[0].Questions[1].Label, "Second")
	}
}

// TestExpandTemplateFlatList verifies that an ungrouped question list is
// wrapped in a single "General Questions" section in original order.
func TestExpandTemplateFlatList(t *testing.T) {
	tpl := &models.Template{
		Type: models.TemplateTypeWebsite,
		Questions: []models.Question{
			{ID: "a", Text: "A", Type: models.QuestionTypeText},
			{ID: "b", Text: "B", Type: models.QuestionTypeText},
			{ID: "c", Text: "C", Type: models.QuestionTypeText},
		},
	}

	sections := ExpandTemplate(tpl)
	if len(sections) != 1 {
		t.Fatalf("flat list expanded to %d sections, want 1", len(sections))
	}
	if sections[0].Title != "General Questions" {
		t.Errorf("synthetic section title = %q, want %q", sections[0].Title, "General Questions")
	}
	if len(sections[0].Questions) != 3 {
		t.Fatalf("synthetic section has %d questions, want 3", len(sections[0].Questions))
	}
	for i, want := range []string{"a", "b", "c"} {
		if sections[0].Questions[i].Name != want {
			t.Errorf("question %d = %q, want %q", i, sections[0].Questions[i].Name, want)
		}
	}
}

// TestExpandTemplateFiltersEmptyGroups verifies that groups with no
// questions do not become sections.
func TestExpandTemplateFiltersEmptyGroups(t *testing.T) {
	tpl := &models.Template{
		Type: models.TemplateTypeBranding,
		Groups: []models.QuestionGroup{
			{ID: "g1", Name: "Empty"},
			{ID: "g2", Name: "Full", Questions: []models.Question{
				{ID: "q1", Text: "Q", Type: models.QuestionTypeText},
			}},
		},
	}

	sections := ExpandTemplate(tpl)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1 (empty group filtered)", len(sections))
	}
	if sections[0].Title != "Full" {
		t.Errorf("remaining section = %q, want %q", sections[0].Title, "Full")
	}
}

// TestExpandTemplateFallback verifies that a nil template and a template
// with zero usable questions both fall back to the default set — the
// wizard must never come up empty.
func TestExpandTemplateFallback(t *testing.T) {
	tests := []struct {
		name string
		tpl  *models.Template
	}{
		{name: "nil template", tpl: nil},
		{name: "no groups", tpl: &models.Template{Type: models.TemplateTypeApp}},
		{name: "only empty groups", tpl: &models.Template{
			Type:   models.TemplateTypeApp,
			Groups: []models.QuestionGroup{{ID: "g", Name: "Empty"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := ExpandTemplate(tt.tpl)
			if len(sections) == 0 {
				t.Fatal("fallback produced zero sections")
			}
			if len(sections[0].Questions) == 0 {
				t.Fatal("fallback section has no questions")
			}
		})
	}
}

// TestDefaultSectionsUnknownType verifies unknown project types fall back
// to the branding question set rather than an empty wizard.
func TestDefaultSectionsUnknownType(t *testing.T) {
	sections := DefaultSections(models.TemplateType("unknown"))
	if len(sections) != 1 || len(sections[0].Questions) == 0 {
		t.Fatalf("DefaultSections(unknown) = %+v, want one populated section", sections)
	}
}
