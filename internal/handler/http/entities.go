// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/MKhiriev/go-admin-sync/models"
)

// entityRoutes is the kind-erased form of entityHandler.
type entityRoutes interface {
	list(w http.ResponseWriter, r *http.Request)
	create(w http.ResponseWriter, r *http.Request)
	update(w http.ResponseWriter, r *http.Request)
	delete(w http.ResponseWriter, r *http.Request)
}

type entityHandler[L any] struct {
	collection EntityCollection[L]
}

func newEntityHandler[L any](collection EntityCollection[L]) *entityHandler[L] {
	return &entityHandler[L]{collection: collection}
}

func (h *Handler) entity(w http.ResponseWriter, r *http.Request) (entityRoutes, bool) {
	kind := models.Kind(chi.URLParam(r, "kind"))
	e, ok := h.entities[kind]
	if !ok {
		http.Error(w, ErrUnknownKind.Error(), http.StatusNotFound)
	}
	return e, ok
}

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	if e, ok := h.entity(w, r); ok {
		e.list(w, r)
	}
}

func (h *Handler) createEntity(w http.ResponseWriter, r *http.Request) {
	if e, ok := h.entity(w, r); ok {
		e.create(w, r)
	}
}

func (h *Handler) updateEntity(w http.ResponseWriter, r *http.Request) {
	if e, ok := h.entity(w, r); ok {
		e.update(w, r)
	}
}

func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request) {
	if e, ok := h.entity(w, r); ok {
		e.delete(w, r)
	}
}

func (e *entityHandler[L]) list(w http.ResponseWriter, r *http.Request) {
	items := e.collection.List()
	if items == nil {
		items = []L{}
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (e *entityHandler[L]) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body L
	if err := utils.ReadJSON(r, &body); err != nil {
		log.Err(err).Str("func", "*entityHandler.create").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	created, err := e.collection.AddEntity(r.Context(), body)
	if err != nil {
		log.Err(err).Str("func", "*entityHandler.create").Msg("error creating entity")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// update replaces the stored entity with the body; the id comes from the
// path.
func (e *entityHandler[L]) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var body L
	if err := utils.ReadJSON(r, &body); err != nil {
		log.Err(err).Str("func", "*entityHandler.update").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	updated, err := e.collection.UpdateEntity(r.Context(), id, func(current *L) { *current = body })
	if err != nil {
		log.Err(err).Str("func", "*entityHandler.update").Str("id", id).Msg("error updating entity")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (e *entityHandler[L]) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := e.collection.DeleteEntity(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*entityHandler.delete").Str("id", id).Msg("error deleting entity")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
