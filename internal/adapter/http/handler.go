package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"inscription-api/internal/core/port"
)

// Services bundles the use cases the HTTP adapter drives.
type Services struct {
	Rotation    port.RotationUseCase
	Attribution port.Attribution
	Links       port.LinkUseCase
	Clicks      port.ClickUseCase
}

// Options configures the HTTP adapter.
type Options struct {
	// FallbackURL is returned with 404 when no link can be served.
	FallbackURL string
	// JWTSecret verifies admin bearer tokens.
	JWTSecret []byte
	// AdminRole is the role claim admin tokens must carry.
	AdminRole string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router; admin routes sit behind
// RequireAdmin.
type Handler struct {
	svc         Services
	fallbackURL string
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.AdminRole == "" {
		opts.AdminRole = "admin"
	}
	h := &Handler{svc: svc, fallbackURL: opts.FallbackURL, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/current-link", h.handleCurrentLink)
		r.Post("/click-events", h.handleRecordClick)

		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin(opts.JWTSecret, opts.AdminRole, logger))

			r.Get("/links", h.handleListLinks)
			r.Post("/links", h.handleCreateLink)
			r.Post("/links/{id}/activate", h.handleSetLinkActive(true))
			r.Post("/links/{id}/deactivate", h.handleSetLinkActive(false))
			r.Post("/links/{id}/restore", h.handleRestoreLink)
			r.Delete("/links/{id}", h.handleDeleteLink)

			r.Get("/click-events/history", h.handleClickHistory)
			r.Get("/stats/overview", h.handleStatsOverview)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
