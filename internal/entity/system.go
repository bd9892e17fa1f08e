// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"strings"

	"github.com/MKhiriev/go-admin-sync/models"
)

var systemStatuses = newEnumTable(map[models.SystemStatus]string{
	models.SystemOperational: "OPERATIONAL",
	models.SystemDegraded:    "DEGRADED",
	models.SystemDown:        "DOWN",
	models.SystemMaintenance: "MAINTENANCE",
}, models.SystemOperational)

type SystemAdapter struct{}

func NewSystemAdapter() SystemAdapter { return SystemAdapter{} }

func (SystemAdapter) ToBackend(s models.System) models.BackendSystem {
	return models.BackendSystem{
		ID:          s.ID,
		SystemName:  strings.TrimSpace(s.Name),
		Description: optional(s.Description),
		OwnerEmail:  optional(s.Owner),
		Criticality: riskLevels.backend(s.Criticality),
		Status:      systemStatuses.backend(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (SystemAdapter) ToLocal(b models.BackendSystem) (models.System, error) {
	if strings.TrimSpace(b.ID) == "" {
		return models.System{}, malformed("system without id")
	}
	if strings.TrimSpace(b.SystemName) == "" {
		return models.System{}, malformed("system " + b.ID + " without name")
	}

	return models.System{
		ID:          b.ID,
		Name:        b.SystemName,
		Description: deref(b.Description),
		Owner:       deref(b.OwnerEmail),
		Criticality: riskLevels.local(b.Criticality),
		Status:      systemStatuses.local(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}, nil
}
