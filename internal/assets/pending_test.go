// pending_test.go exercises the Valkey-backed pending-upload store.
// Tests are skipped when Valkey is not available.
package assets

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"brandkit/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a client on DB 15, skipping if unreachable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, pendingKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// TestPendingStoreTakeByCategory verifies that confirming one category
// removes only that category's entries, in upload order, and leaves the
// rest pending.
func TestPendingStoreTakeByCategory(t *testing.T) {
	client := testValkeyClient(t)
	store := NewPendingStore(client)
	ctx := context.Background()
	projectID := uuid.New()

	err := store.Add(ctx, projectID,
		PendingUpload{Name: "a.png", URL: "u/a", Category: models.AssetCategoryLogos, Path: "p/a"},
		PendingUpload{Name: "b.ttf", URL: "u/b", Category: models.AssetCategoryTypography, Path: "p/b"},
		PendingUpload{Name: "c.png", URL: "u/c", Category: models.AssetCategoryLogos, Path: "p/c"},
	)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	taken, err := store.Take(ctx, projectID, models.AssetCategoryLogos)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if len(taken) != 2 || taken[0].Name != "a.png" || taken[1].Name != "c.png" {
		t.Fatalf("Take(logos) = %+v, want a.png then c.png", taken)
	}

	remaining, err := store.List(ctx, projectID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Name != "b.ttf" {
		t.Fatalf("remaining = %+v, want only b.ttf", remaining)
	}
}

// TestPendingStoreTakeEmptyCategory verifies that taking a category with
// no pending entries returns nothing and disturbs nothing.
func TestPendingStoreTakeEmptyCategory(t *testing.T) {
	client := testValkeyClient(t)
	store := NewPendingStore(client)
	ctx := context.Background()
	projectID := uuid.New()

	if err := store.Add(ctx, projectID,
		PendingUpload{Name: "a.png", URL: "u/a", Category: models.AssetCategoryLogos, Path: "p/a"},
	); err != nil {
		t.Fatalf("Add: %v", err)
	}

	taken, err := store.Take(ctx, projectID, models.AssetCategoryColors)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if taken != nil {
		t.Fatalf("Take(colors) = %+v, want nil", taken)
	}

	remaining, err := store.List(ctx, projectID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("remaining = %+v, want untouched single entry", remaining)
	}
}

// TestPendingStoreClear verifies wholesale discard of pending entries.
func TestPendingStoreClear(t *testing.T) {
	client := testValkeyClient(t)
	store := NewPendingStore(client)
	ctx := context.Background()
	projectID := uuid.New()

	if err := store.Add(ctx, projectID,
		PendingUpload{Name: "a.png", URL: "u/a", Category: models.AssetCategoryLogos, Path: "p/a"},
	); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Clear(ctx, projectID); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	remaining, err := store.List(ctx, projectID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("remaining after Clear = %+v, want none", remaining)
	}
}
