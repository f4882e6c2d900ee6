package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *CallbackHandler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/token", h.receiveToken)
	// Auth0 may redirect to any path below the callback URL.
	router.Get("/*", h.callbackPage)

	return router
}
