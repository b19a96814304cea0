package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/config/", h.getConfig)
	router.Get("/api/config/{name}", h.getConfigValue)
	router.Get("/api/version/", h.getServerVersion)

	return router
}
