package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mosdac/assistant/cmd/api/middleware"
	"github.com/mosdac/assistant/internal/handlers"
)

// newRouter mounts every panel under its own recovery boundary so a
// failure in one does not take down the others.
func newRouter(a *app) http.Handler {
	chat := handlers.NewChatHandler(a.sessions, a.logger)
	classify := handlers.NewClassifyHandler(a.engine, a.logger)
	dash := handlers.NewDashboardHandler(a.monitor, a.notifier)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(middleware.Cors(a.cfg.Server.CORSOrigin))

	r.Method(http.MethodGet, "/health", a.health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Recover("chat", a.logger))
		r.Post("/sessions", chat.Create)
		r.Get("/sessions/{id}", chat.Get)
		r.Post("/sessions/{id}/messages", chat.Submit)
		r.Delete("/sessions/{id}", chat.Delete)
		r.Method(http.MethodPost, "/classify", classify)
		r.Get("/notifications", dash.Notifications)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Recover("graph", a.logger))
		r.Get("/graphs/{variant}", a.graphs.Get)
		r.Post("/graphs/{variant}/click", a.graphs.Click)
		r.Get("/graphs/{variant}/panel", a.graphs.Panel)
		r.Get("/graphs/{variant}/render.{format}", a.graphs.Render)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Recover("dashboard", a.logger))
		r.Get("/dashboard", dash.Get)
		r.Post("/dashboard/live", dash.SetLive)
		r.Get("/features", handlers.FeaturesHandler)
		r.Get("/features/{id}", handlers.FeatureHandler)
	})

	return r
}
