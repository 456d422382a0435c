// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"brandkit/internal/models"
)

const (
	// NumSlots is the fixed number of slots for textList and imageUpload
	// answers. The slot index is the slot's identity: slots are never
	// removed, only cleared.
	NumSlots = 3

	// DefaultTTL is how long an abandoned wizard session survives in
	// Valkey before expiring.
	DefaultTTL = 48 * time.Hour

	// keyPrefix namespaces wizard session keys in Valkey.
	keyPrefix = "wizard:"
)

// AnswerValue holds one question's collected answer. Text is used for
// text, textarea, and file questions; Slots for textList and imageUpload.
// In Slots, a nil entry is a cleared image slot and an empty string is an
// unfilled text slot. A question absent from the answers map is unanswered.
type AnswerValue struct {
	Text  string    `json:"text,omitempty"`
	Slots []*string `json:"slots,omitempty"`
}

// Session is the transient state of one wizard run. Index walks
// [0, len(Sections)]; the final value is the review state. Nothing is
// written to the database until submit.
type Session struct {
	ID         string                 `json:"id"`
	ProjectID  uuid.UUID              `json:"project_id"`
	TemplateID uuid.UUID              `json:"template_id"`
	Type       models.TemplateType    `json:"type"`
	Sections   []Section              `json:"sections"`
	Index      int                    `json:"index"`
	Answers    map[string]AnswerValue `json:"answers"`
	Strict     bool                   `json:"strict"`
	CreatedAt  time.Time              `json:"created_at"`
}

// NewSession builds a session for the expanded sections. Completion
// validation is only enforced for the single-section flow, matching the
// simple wizard; multi-step runs may submit with gaps.
func NewSession(projectID, templateID uuid.UUID, t models.TemplateType, sections []Section) *Session {
	return &Session{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		TemplateID: templateID,
		Type:       t,
		Sections:   sections,
		Answers:    make(map[string]AnswerValue),
		Strict:     len(sections) == 1,
		CreatedAt:  time.Now(),
	}
}

// InReview returns true once the user has advanced past the last section.
func (s *Session) InReview() bool {
	return s.Index >= len(s.Sections)
}

// CurrentSection returns the active section, or nil in the review state.
func (s *Session) CurrentSection() *Section {
	if s.InReview() {
		return nil
	}
	return &s.Sections[s.Index]
}

// Next advances to the following section, entering review after the last
// one. In review it is a no-op.
func (s *Session) Next() {
	if s.Index < len(s.Sections) {
		s.Index++
	}
}

// Back returns to the previous section. From review it lands on the last
// section. At the first section there is nowhere to go.
func (s *Session) Back() error {
	if s.Index == 0 {
		return fmt.Errorf("already at the first section")
	}
	s.Index--
	return nil
}

// SetText records a single-string answer, last write wins.
func (s *Session) SetText(questionID, value string) {
	s.Answers[questionID] = AnswerValue{Text: value}
}

// SetSlot writes one slot of a textList or imageUpload answer. The slot
// list is created at its fixed size on first write; out-of-range indices
// are rejected.
func (s *Session) SetSlot(questionID string, idx int, value string) error {
	if idx < 0 || idx >= NumSlots {
		return fmt.Errorf("slot index %d out of range", idx)
	}
	av := s.Answers[questionID]
	if av.Slots == nil {
		av.Slots = emptySlots()
	}
	av.Slots[idx] = &value
	s.Answers[questionID] = av
	return nil
}

// ClearSlot nulls one slot of an answer, keeping the slot itself. Used
// when an uploaded image is removed.
func (s *Session) ClearSlot(questionID string, idx int) error {
	if idx < 0 || idx >= NumSlots {
		return fmt.Errorf("slot index %d out of range", idx)
	}
	av, ok := s.Answers[questionID]
	if !ok || av.Slots == nil {
		return nil
	}
	av.Slots[idx] = nil
	s.Answers[questionID] = av
	return nil
}

// emptySlots returns a fresh slot list filled with empty strings.
func emptySlots() []*string {
	slots := make([]*string, NumSlots)
	for i := range slots {
		empty := ""
		slots[i] = &empty
	}
	return slots
}

// Unanswered lists the labels of questions with no usable answer, in
// section order. An answer counts if its trimmed text is non-empty or any
// slot holds a non-empty value.
func (s *Session) Unanswered() []string {
	var missing []string
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			if !answered(s.Answers[q.Name]) {
				missing = append(missing, q.Label)
			}
		}
	}
	return missing
}

// answered reports whether av carries any non-empty content.
func answered(av AnswerValue) bool {
	if strings.TrimSpace(av.Text) != "" {
		return true
	}
	for _, slot := range av.Slots {
		if slot != nil && strings.TrimSpace(*slot) != "" {
			return true
		}
	}
	return false
}

// BriefAnswers flattens the collected answers into the creative brief
// shape, pairing each question's current label with its answer text.
// Slot answers are joined with newlines, skipping cleared and empty slots.
// Unanswered questions are included with an empty answer so the brief
// shows the full questionnaire.
func (s *Session) BriefAnswers() map[string]models.BriefAnswer {
	out := make(map[string]models.BriefAnswer)
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			av := s.Answers[q.Name]
			out[q.Name] = models.BriefAnswer{
				QuestionText: q.Label,
				AnswerText:   flatten(av),
			}
		}
	}
	return out
}

// flatten renders an AnswerValue as a single string.
func flatten(av AnswerValue) string {
	if av.Slots == nil {
		return strings.TrimSpace(av.Text)
	}
	var parts []string
	for _, slot := range av.Slots {
		if slot != nil && strings.TrimSpace(*slot) != "" {
			parts = append(parts, strings.TrimSpace(*slot))
		}
	}
	return strings.Join(parts, "\n")
}

// Store persists wizard sessions in Valkey with automatic TTL expiry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a wizard session store backed by the given client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: DefaultTTL}
}

// Save writes the session, resetting its TTL.
func (st *Store) Save(ctx context.Context, s *Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("wizard session marshal: %w", err)
	}
	if err := st.client.Set(ctx, keyPrefix+s.ID, payload, st.ttl).Err(); err != nil {
		return fmt.Errorf("wizard session store: %w", err)
	}
	return nil
}

// Get retrieves a session by ID. Returns nil if it does not exist or has
// expired.
func (st *Store) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := st.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wizard session get: %w", err)
	}
	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("wizard session unmarshal: %w", err)
	}
	return &s, nil
}

// Delete discards a session. Used on cancel and after submit; the
// collected answers are gone once this returns.
func (st *Store) Delete(ctx context.Context, id string) error {
	if err := st.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("wizard session delete: %w", err)
	}
	return nil
}
