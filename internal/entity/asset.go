// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"strings"

	"github.com/MKhiriev/go-admin-sync/models"
)

var assetStatuses = newEnumTable(map[models.AssetStatus]string{
	models.AssetAvailable: "AVAILABLE",
	models.AssetInUse:     "IN_USE",
	models.AssetRepair:    "REPAIR",
	models.AssetRetired:   "RETIRED",
}, models.AssetAvailable)

type AssetAdapter struct{}

func NewAssetAdapter() AssetAdapter { return AssetAdapter{} }

func (AssetAdapter) ToBackend(a models.Asset) models.BackendAsset {
	return models.BackendAsset{
		ID:           a.ID,
		AssetName:    strings.TrimSpace(a.Name),
		AssetType:    strings.TrimSpace(a.Type),
		SerialNumber: optional(a.SerialNumber),
		EmployeeID:   optional(a.AssignedTo),
		Status:       assetStatuses.backend(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (AssetAdapter) ToLocal(b models.BackendAsset) (models.Asset, error) {
	if strings.TrimSpace(b.ID) == "" {
		return models.Asset{}, malformed("asset without id")
	}
	if strings.TrimSpace(b.AssetName) == "" {
		return models.Asset{}, malformed("asset " + b.ID + " without name")
	}

	return models.Asset{
		ID:           b.ID,
		Name:         b.AssetName,
		Type:         b.AssetType,
		SerialNumber: deref(b.SerialNumber),
		AssignedTo:   deref(b.EmployeeID),
		Status:       assetStatuses.local(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}, nil
}
