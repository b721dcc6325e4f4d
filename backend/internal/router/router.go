package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/anonboard/backend/internal/setup"
	mw "github.com/itchan-dev/anonboard/shared/middleware"
)

// New creates a chi router with every board route and the operational endpoints.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config.Public
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(deps.Metrics.Middleware)
	r.Use(chimw.Timeout(cfg.RequestTimeout))

	// any origin unless restricted in config
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(cfg.SecureHeadersHTTPS))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/threads/{board}", h.ListThreads)
		r.Post("/threads/{board}", h.CreateThread)
		r.Put("/threads/{board}", h.ReportThread)
		r.Delete("/threads/{board}", h.DeleteThread)

		r.Get("/replies/{board}", h.GetThread)
		r.Post("/replies/{board}", h.CreateReply)
		r.Put("/replies/{board}", h.ReportReply)
		r.Delete("/replies/{board}", h.DeleteReply)
	})

	return r
}
