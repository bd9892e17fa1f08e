// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-sync/internal/service"
)

// errorStatuses is checked in order; the first match wins. A joined error
// from a multi-kind pass that contains ErrSyncInProgress maps to 409.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrUnknownKind, http.StatusNotFound},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrEmptyConfigUpdate, http.StatusBadRequest},

	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrDuplicateID, http.StatusConflict},
	{service.ErrEntityNotFound, http.StatusNotFound},
	{service.ErrInvalidInterval, http.StatusBadRequest},
	{service.ErrPushFailed, http.StatusBadGateway},
	{service.ErrSyncFailed, http.StatusBadGateway},
	{service.ErrFlushFailed, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
