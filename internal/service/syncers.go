// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-admin-sync/internal/adapter"
	"github.com/MKhiriev/go-admin-sync/internal/entity"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/retry"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/MKhiriev/go-admin-sync/models"
)

// NewHTTPSyncers builds one [SyncService] per kind, all sharing client and
// policy.
func NewHTTPSyncers(client *utils.HTTPClient, policy retry.Policy, logger *logger.Logger) Syncers {
	return Syncers{
		Employees: NewSyncService[models.Employee, models.BackendEmployee](models.KindEmployee,
			adapter.NewHTTPRemoteClient[models.BackendEmployee](client, models.KindEmployee, logger),
			entity.NewEmployeeAdapter(), policy, logger),
		Vendors: NewSyncService[models.Vendor, models.BackendVendor](models.KindVendor,
			adapter.NewHTTPRemoteClient[models.BackendVendor](client, models.KindVendor, logger),
			entity.NewVendorAdapter(), policy, logger),
		Systems: NewSyncService[models.System, models.BackendSystem](models.KindSystem,
			adapter.NewHTTPRemoteClient[models.BackendSystem](client, models.KindSystem, logger),
			entity.NewSystemAdapter(), policy, logger),
		Risks: NewSyncService[models.Risk, models.BackendRisk](models.KindRisk,
			adapter.NewHTTPRemoteClient[models.BackendRisk](client, models.KindRisk, logger),
			entity.NewRiskAdapter(), policy, logger),
		Assets: NewSyncService[models.Asset, models.BackendAsset](models.KindAsset,
			adapter.NewHTTPRemoteClient[models.BackendAsset](client, models.KindAsset, logger),
			entity.NewAssetAdapter(), policy, logger),
		Tasks: NewSyncService[models.Task, models.BackendTask](models.KindTask,
			adapter.NewHTTPRemoteClient[models.BackendTask](client, models.KindTask, logger),
			entity.NewTaskAdapter(), policy, logger),
	}
}
