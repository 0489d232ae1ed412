// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router:
//
//	GET /api/version/  server version, text/plain
//	GET /api/pages/    paths of pages with a locked container, JSON
//	GET /*             static site
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)
		r.Get("/pages/", h.getLockedPages)
	})

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/*", h.serveSite)
		r.Head("/*", h.serveSite)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
