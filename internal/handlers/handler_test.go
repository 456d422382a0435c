// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared infrastructure for handler integration
// tests: a migrated test database, a Valkey client on a scratch DB, and a
// fully wired API with storage and mail left unconfigured. Tests are
// skipped when PostgreSQL or Valkey are not available.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"brandkit/internal/assets"
	"brandkit/internal/database"
	"brandkit/internal/middleware"
	"brandkit/internal/models"
	"brandkit/internal/session"
	"brandkit/internal/store"
	"brandkit/internal/wizard"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brandkit")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brandkit")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB opens the test database and runs migrations, skipping the test
// when the database is unreachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a client on DB 15, skipping if unreachable.
// Pending-upload keys are swept in cleanup.
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
		keys, _ := client.Keys(ctx, "pending-assets:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv bundles a wired API with the backing connections so tests can
// reach into the stores directly.
type testEnv struct {
	api    *API
	db     *sql.DB
	valkey *redis.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	client := testValkeyClient(t)
	api := New(
		session.NewStore(client, false),
		store.NewUserStore(db),
		store.NewClientStore(db),
		store.NewProjectStore(db),
		store.NewTemplateStore(db),
		store.NewBriefStore(db),
		store.NewAssetStore(db),
		store.NewGuidelinesStore(db),
		wizard.NewStore(client),
		assets.NewPendingStore(client),
		nil, // object storage not configured in tests
		nil, // mail not configured in tests
		"http://localhost:8080",
	)
	return &testEnv{api: api, db: db, valkey: client}
}

// createProject makes a throwaway designer, client and project. Everything
// cascades away when the user row is deleted in cleanup.
func (e *testEnv) createProject(t *testing.T) *models.Project {
	t.Helper()

	email := "test-" + uuid.NewString() + "@example.com"
	user, err := store.NewUserStore(e.db).Create(&models.User{
		Email: email, DisplayName: "Test Designer", Role: models.RoleDesigner,
	})
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { e.db.Exec("DELETE FROM users WHERE id = $1", user.ID) })

	client, err := store.NewClientStore(e.db).Create(&models.Client{
		DesignerID: user.ID, Name: "Test Client", Email: email,
	})
	if err != nil {
		t.Fatalf("create test client: %v", err)
	}

	project, err := store.NewProjectStore(e.db).Create(&models.Project{
		DesignerID: user.ID, ClientID: client.ID,
		Name: "Test Project", Type: models.TemplateTypeBranding,
		Status: models.ProjectStatusOnboarding,
	})
	if err != nil {
		t.Fatalf("create test project: %v", err)
	}
	return project
}

// designerRequest attaches the project URL param and an owning designer
// session to the request context, standing in for the router and the
// session middleware.
func designerRequest(r *http.Request, project *models.Project) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("projectID", project.ID.String())
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, &session.Data{
		UserID:      project.DesignerID,
		Email:       "designer@brandkit.local",
		DisplayName: "Test Designer",
		Role:        models.RoleDesigner,
	})
	return r.WithContext(ctx)
}
