package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"brandkit/internal/models"
	"brandkit/internal/session"
)

// ctxWithSession returns a context carrying the given session data using
// the same context key the middleware uses. This allows tests to simulate
// the state after LoadSession has run without needing a real Valkey store.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionKey, data)
}

// okHandler is a simple handler that records whether it was invoked.
func okHandler() (http.Handler, *bool) {
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return h, &called
}

func designerSession() *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "designer@brandkit.local",
		DisplayName: "Test Designer",
		Role:        models.RoleDesigner,
	}
}

func clientSession(projectID uuid.UUID) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "client@example.com",
		DisplayName: "Test Client",
		Role:        models.RoleClient,
		ProjectID:   &projectID,
	}
}

func TestSessionFromCtx(t *testing.T) {
	t.Run("returns session when present", func(t *testing.T) {
		sess := designerSession()
		got := SessionFromCtx(ctxWithSession(context.Background(), sess))
		if got == nil {
			t.Fatal("expected non-nil session, got nil")
		}
		if got.Email != sess.Email {
			t.Errorf("Email: got %q, want %q", got.Email, sess.Email)
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		if got := SessionFromCtx(context.Background()); got != nil {
			t.Errorf("expected nil session, got %+v", got)
		}
	})

	t.Run("returns nil for wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, "not-a-session")
		if got := SessionFromCtx(ctx); got != nil {
			t.Errorf("expected nil for wrong type, got %+v", got)
		}
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("401 when no session", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireAuth(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if *called {
			t.Error("next handler should NOT have been called")
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
		}
	})

	t.Run("passes through when session exists", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireAuth(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req = req.WithContext(ctxWithSession(req.Context(), designerSession()))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !*called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})
}

func TestRequireDesigner(t *testing.T) {
	t.Run("403 for client portal session", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireDesigner(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req = req.WithContext(ctxWithSession(req.Context(), clientSession(uuid.New())))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if *called {
			t.Error("next handler should NOT have been called")
		}
		if rr.Code != http.StatusForbidden {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusForbidden)
		}
	})

	t.Run("403 when no session", func(t *testing.T) {
		inner, _ := okHandler()
		handler := RequireDesigner(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusForbidden {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusForbidden)
		}
	})

	t.Run("passes designer through", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireDesigner(inner)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req = req.WithContext(ctxWithSession(req.Context(), designerSession()))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !*called {
			t.Error("next handler should have been called")
		}
	})
}

func TestClientSessionProjectScope(t *testing.T) {
	projectID := uuid.New()
	sess := clientSession(projectID)

	if !sess.CanAccessProject(projectID) {
		t.Error("client should access its own project")
	}
	if sess.CanAccessProject(uuid.New()) {
		t.Error("client should not access another project")
	}
	if !designerSession().CanAccessProject(projectID) {
		t.Error("designer sessions are not project-scoped")
	}
}
