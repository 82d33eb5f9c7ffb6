package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressedTypes are the response content types gzip-encoded for clients
// that accept it.
var compressedTypes = []string{
	"application/json",
	"application/yaml",
	"application/octet-stream",
	"text/plain",
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, compressedTypes...))
	router.Use(withGZipRequest)
	router.Use(h.withBodyLimit)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/save", func(r chi.Router) {
		r.Use(h.withHashCheck)

		r.Post("/decode", h.decode)
		r.Post("/export", h.export)
		r.Post("/report", h.report)
		r.Post("/encode", h.encode)
	})

	router.Route("/api/snapshots", func(r chi.Router) {
		r.Use(h.requireSnapshots)

		r.Get("/", h.listSnapshots)
		r.Get("/{id}", h.getSnapshot)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
