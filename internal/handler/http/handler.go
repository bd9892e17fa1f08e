// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/service"
	"github.com/MKhiriev/go-admin-sync/models"
)

type Handler struct {
	controls SyncControls
	entities map[models.Kind]entityRoutes

	logger *logger.Logger
}

func NewHandler(store *service.LocalStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		controls: store,
		entities: map[models.Kind]entityRoutes{
			models.KindEmployee: newEntityHandler[models.Employee](store.Employees),
			models.KindVendor:   newEntityHandler[models.Vendor](store.Vendors),
			models.KindSystem:   newEntityHandler[models.System](store.Systems),
			models.KindRisk:     newEntityHandler[models.Risk](store.Risks),
			models.KindAsset:    newEntityHandler[models.Asset](store.Assets),
			models.KindTask:     newEntityHandler[models.Task](store.Tasks),
		},
		logger: logger,
	}
}
