// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"brandkit/internal/database"
	"brandkit/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brandkit")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brandkit")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testProject creates a throwaway designer, client and project for a test.
// Everything cascades away when the user row is deleted in cleanup.
func testProject(t *testing.T, db *sql.DB) *models.Project {
	t.Helper()

	email := "test-" + uuid.NewString() + "@example.com"
	user, err := NewUserStore(db).Create(&models.User{
		Email: email, DisplayName: "Test Designer", Role: models.RoleDesigner,
	})
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", user.ID) })

	client, err := NewClientStore(db).Create(&models.Client{
		DesignerID: user.ID, Name: "Test Client", Email: email,
	})
	if err != nil {
		t.Fatalf("create test client: %v", err)
	}

	project, err := NewProjectStore(db).Create(&models.Project{
		DesignerID: user.ID, ClientID: client.ID,
		Name: "Test Project", Type: models.TemplateTypeBranding,
		Status: models.ProjectStatusOnboarding,
	})
	if err != nil {
		t.Fatalf("create test project: %v", err)
	}
	return project
}

// cleanTemplates removes test templates by name. Call in t.Cleanup().
func cleanTemplates(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM questionnaire_templates WHERE name = $1 AND owner_id IS NOT NULL", name)
	}
}
