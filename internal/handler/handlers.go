// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the control surface.
package handler

import (
	"github.com/MKhiriev/go-admin-sync/internal/config"
	"github.com/MKhiriev/go-admin-sync/internal/handler/http"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(store *service.LocalStore, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(store, logger)}, nil
}
