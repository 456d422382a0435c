// Package router sets up all HTTP routes and middleware chains for the
// BrandKit server. It organizes routes into the designer API, the client
// portal, and the public share pages with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"brandkit/internal/handlers"
	"brandkit/internal/middleware"
	"brandkit/internal/session"
)

// mailRateLimit throttles the mail endpoints per client IP.
const (
	mailRateLimit  = 10
	mailRateWindow = time.Hour

	portalRateLimit  = 10
	portalRateWindow = 15 * time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Client portal entry — access-code check, rate limited against
	// brute force.
	portalLimiter := middleware.NewRateLimiter(portalRateLimit, portalRateWindow)
	r.With(portalLimiter.Middleware).Post("/api/portal/login", api.PortalLogin)
	r.Post("/api/portal/logout", api.PortalLogout)

	// Designer-only API.
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireDesigner)

			// Profile
			r.Get("/profile", api.ProfileGet)
			r.Put("/profile", api.ProfileUpdate)
			r.Post("/profile/photo", api.ProfilePhoto)

			// Clients
			r.Route("/clients", func(r chi.Router) {
				r.Get("/", api.ClientList)
				r.Post("/", api.ClientCreate)
				r.Get("/{clientID}", api.ClientGet)
				r.Put("/{clientID}", api.ClientUpdate)
				r.Delete("/{clientID}", api.ClientDelete)
			})

			// Questionnaire templates
			r.Route("/templates", func(r chi.Router) {
				r.Get("/", api.TemplateList)
				r.Post("/", api.TemplateCreate)
				r.Get("/{templateID}", api.TemplateGet)
				r.Put("/{templateID}", api.TemplateUpdate)
				r.Delete("/{templateID}", api.TemplateDelete)
				r.Post("/{templateID}/move-group", api.TemplateMoveGroup)
				r.Post("/{templateID}/move-question", api.TemplateMoveQuestion)
			})

			// Project lifecycle
			r.Get("/projects", api.ProjectList)
			r.Post("/projects", api.ProjectCreate)
			r.Route("/projects/{projectID}", func(r chi.Router) {
				r.Put("/", api.ProjectUpdate)
				r.Delete("/", api.ProjectDelete)
				r.Post("/access-code", api.ProjectAccessCode)
			})

			// Mail — throttled; sending costs reputation.
			mailLimiter := middleware.NewRateLimiter(mailRateLimit, mailRateWindow)
			r.Route("/mail", func(r chi.Router) {
				r.Use(mailLimiter.Middleware)
				r.Post("/send", api.MailSend)
				r.Post("/invite", api.MailInvite)
			})
		})

		// Shared project surface — designers and the project's own client
		// session. Per-project authorization happens in the handlers.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/projects/{projectID}", func(r chi.Router) {
				r.Get("/", api.ProjectGet)

				// Wizard
				r.Post("/wizard", api.WizardStart)

				// Briefs
				r.Get("/briefs", api.BriefList)
				r.Get("/briefs/{briefID}", api.BriefGet)
				r.Put("/briefs/{briefID}/answer", api.BriefUpdateAnswer)

				// Brand assets
				r.Get("/assets", api.AssetList)
				r.Get("/assets/pending", api.AssetPending)
				r.Post("/assets/{category}", api.AssetUpload)
				r.Post("/assets/confirm", api.AssetConfirm)
				r.Delete("/assets/{category}", api.AssetDelete)
				r.Delete("/assets/{category}/all", api.AssetCategoryClear)

				// Guidelines
				r.Get("/guidelines", api.GuidelinesGet)
				r.Put("/guidelines", api.GuidelinesPut)
				r.Post("/guidelines/font", api.GuidelinesFontUpload)
				r.Get("/guidelines/font/link", api.GuidelinesFontLink)
				r.Post("/guidelines/font/preview", api.GuidelinesFontPreview)
				r.Post("/guidelines/logo", api.GuidelinesLogoUpload)
			})

			// Wizard sessions — project scope checked against the session
			// stored in the wizard state.
			r.Route("/wizard/{sessionID}", func(r chi.Router) {
				r.Get("/", api.WizardState)
				r.Post("/answer", api.WizardAnswer)
				r.Post("/slot", api.WizardSlot)
				r.Post("/image", api.WizardImage)
				r.Post("/next", api.WizardNext)
				r.Post("/back", api.WizardBack)
				r.Post("/submit", api.WizardSubmit)
				r.Delete("/", api.WizardCancel)
			})
		})
	})

	// Public share pages — no auth. The URL is the credential.
	r.Get("/p/{projectID}/guidelines", api.PublicGuidelines)
	r.Get("/p/{projectID}/guidelines/qr", api.PublicGuidelinesQR)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
