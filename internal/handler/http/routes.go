// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/status", h.syncStatus)
		r.Put("/config", h.updateSyncConfig)
		r.Post("/", h.syncWithBackend)
		r.Post("/pending", h.applyPendingChanges)
		r.Delete("/errors", h.clearSyncErrors)
	})

	router.Route("/api/{kind}", func(r chi.Router) {
		r.Get("/", h.listEntities)
		r.Post("/", h.createEntity)
		r.Put("/{id}", h.updateEntity)
		r.Delete("/{id}", h.deleteEntity)
	})

	return router
}
