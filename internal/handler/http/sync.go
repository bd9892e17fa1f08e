// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/MKhiriev/go-admin-sync/models"
)

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.controls.Status(), http.StatusOK)
}

func (h *Handler) updateSyncConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.SyncConfigUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateSyncConfig").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if update.Empty() {
		http.Error(w, ErrEmptyConfigUpdate.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if update.SyncIntervalMinutes != nil {
		_, err = h.controls.SetSyncInterval(ctx, *update.SyncIntervalMinutes)
	}
	if err == nil && update.SyncEnabled != nil {
		_, err = h.controls.SetSyncEnabled(ctx, *update.SyncEnabled)
	}
	if err == nil && update.AutoSync != nil {
		_, err = h.controls.SetAutoSync(ctx, *update.AutoSync)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateSyncConfig").Msg("error updating sync config")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, h.controls.Status().Config, http.StatusOK)
}

func (h *Handler) syncWithBackend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.controls.SyncWithBackend(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.syncWithBackend").Msg("sync with backend failed")
		h.writeSyncError(w, err)
		return
	}

	utils.WriteJSON(w, h.controls.Status(), http.StatusOK)
}

func (h *Handler) applyPendingChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.controls.ApplyPendingChanges(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.applyPendingChanges").Msg("applying pending changes failed")
		h.writeSyncError(w, err)
		return
	}

	utils.WriteJSON(w, h.controls.Status(), http.StatusOK)
}

func (h *Handler) clearSyncErrors(w http.ResponseWriter, r *http.Request) {
	h.controls.ClearSyncErrors(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// syncErrorResponse carries the status alongside the failure so that the
// caller sees which collections failed.
type syncErrorResponse struct {
	Error  string             `json:"error"`
	Status models.StoreStatus `json:"status"`
}

func (h *Handler) writeSyncError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, syncErrorResponse{Error: err.Error(), Status: h.controls.Status()}, statusFromError(err))
}
