// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"strings"

	"github.com/MKhiriev/go-admin-sync/models"
)

var riskStatuses = newEnumTable(map[models.RiskStatus]string{
	models.RiskOpen:      "OPEN",
	models.RiskMitigated: "MITIGATED",
	models.RiskAccepted:  "ACCEPTED",
	models.RiskClosed:    "CLOSED",
}, models.RiskOpen)

type RiskAdapter struct{}

func NewRiskAdapter() RiskAdapter { return RiskAdapter{} }

func (RiskAdapter) ToBackend(r models.Risk) models.BackendRisk {
	return models.BackendRisk{
		ID:          r.ID,
		Title:       strings.TrimSpace(r.Title),
		Description: optional(r.Description),
		OwnerEmail:  optional(r.Owner),
		Impact:      riskLevels.backend(r.Severity),
		Likelihood:  riskLevels.backend(r.Likelihood),
		Status:      riskStatuses.backend(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (RiskAdapter) ToLocal(b models.BackendRisk) (models.Risk, error) {
	if strings.TrimSpace(b.ID) == "" {
		return models.Risk{}, malformed("risk without id")
	}
	if strings.TrimSpace(b.Title) == "" {
		return models.Risk{}, malformed("risk " + b.ID + " without title")
	}

	return models.Risk{
		ID:          b.ID,
		Title:       b.Title,
		Description: deref(b.Description),
		Owner:       deref(b.OwnerEmail),
		Severity:    riskLevels.local(b.Impact),
		Likelihood:  riskLevels.local(b.Likelihood),
		Status:      riskStatuses.local(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}, nil
}
