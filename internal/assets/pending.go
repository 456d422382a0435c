// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"brandkit/internal/models"
)

const (
	// pendingTTL is how long unconfirmed uploads survive. If the user
	// abandons the flow after uploading, the entries expire and the
	// orphaned objects are left to a storage lifecycle rule.
	pendingTTL = 24 * time.Hour

	pendingKeyPrefix = "pending-assets:"
)

// PendingUpload is a file whose bytes are already in object storage but
// whose metadata has not been committed to a category's file list. This
// split is what lets the user abandon an upload without leaving a partial
// category record behind.
type PendingUpload struct {
	Name       string               `json:"name"`
	URL        string               `json:"url"`
	Type       string               `json:"type"`
	Category   models.AssetCategory `json:"category"`
	Path       string               `json:"path"`
	UploadedAt time.Time            `json:"uploaded_at"`
}

// Record converts the pending entry into a committed asset record.
func (p PendingUpload) Record() models.AssetRecord {
	return models.AssetRecord{
		Name:       p.Name,
		URL:        p.URL,
		Type:       p.Type,
		FileType:   string(p.Category),
		Path:       p.Path,
		UploadedAt: p.UploadedAt,
	}
}

// PendingStore tracks unconfirmed uploads per project in Valkey.
type PendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPendingStore creates a pending-upload store backed by the given client.
func NewPendingStore(client *redis.Client) *PendingStore {
	return &PendingStore{client: client, ttl: pendingTTL}
}

func pendingKey(projectID uuid.UUID) string {
	return pendingKeyPrefix + projectID.String()
}

// Add appends pending entries for a project and refreshes the TTL.
func (s *PendingStore) Add(ctx context.Context, projectID uuid.UUID, entries ...PendingUpload) error {
	if len(entries) == 0 {
		return nil
	}
	payloads := make([]any, 0, len(entries))
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("pending marshal: %w", err)
		}
		payloads = append(payloads, b)
	}
	key := pendingKey(projectID)
	if err := s.client.RPush(ctx, key, payloads...).Err(); err != nil {
		return fmt.Errorf("pending push: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("pending expire: %w", err)
	}
	return nil
}

// List returns all pending entries for a project in upload order.
func (s *PendingStore) List(ctx context.Context, projectID uuid.UUID) ([]PendingUpload, error) {
	raw, err := s.client.LRange(ctx, pendingKey(projectID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("pending list: %w", err)
	}
	entries := make([]PendingUpload, 0, len(raw))
	for _, item := range raw {
		var e PendingUpload
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("pending unmarshal: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Take removes and returns the pending entries for one category, leaving
// entries for other categories pending. Called on confirm; the returned
// records are appended to the category's file list in this order.
func (s *PendingStore) Take(ctx context.Context, projectID uuid.UUID, cat models.AssetCategory) ([]PendingUpload, error) {
	all, err := s.List(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var taken []PendingUpload
	var remain []PendingUpload
	for _, e := range all {
		if e.Category == cat {
			taken = append(taken, e)
		} else {
			remain = append(remain, e)
		}
	}
	if len(taken) == 0 {
		return nil, nil
	}

	// Rewrite the list with the remainder. Last write wins; concurrent
	// uploads between List and the rewrite are not protected.
	key := pendingKey(projectID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("pending clear: %w", err)
	}
	if err := s.Add(ctx, projectID, remain...); err != nil {
		return nil, err
	}
	return taken, nil
}

// Clear drops every pending entry for a project.
func (s *PendingStore) Clear(ctx context.Context, projectID uuid.UUID) error {
	if err := s.client.Del(ctx, pendingKey(projectID)).Err(); err != nil {
		return fmt.Errorf("pending clear: %w", err)
	}
	return nil
}
