// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"strings"

	"github.com/MKhiriev/go-admin-sync/models"
)

var (
	vendorStatuses = newEnumTable(map[models.VendorStatus]string{
		models.VendorActive:   "ACTIVE",
		models.VendorInactive: "INACTIVE",
		models.VendorPending:  "PENDING",
	}, models.VendorActive)

	// riskLevels is shared by every kind that grades something low..critical.
	riskLevels = newEnumTable(map[models.RiskLevel]string{
		models.RiskLow:      "LOW",
		models.RiskMedium:   "MEDIUM",
		models.RiskHigh:     "HIGH",
		models.RiskCritical: "CRITICAL",
	}, models.RiskMedium)
)

type VendorAdapter struct{}

func NewVendorAdapter() VendorAdapter { return VendorAdapter{} }

func (VendorAdapter) ToBackend(v models.Vendor) models.BackendVendor {
	return models.BackendVendor{
		ID:           v.ID,
		CompanyName:  strings.TrimSpace(v.Name),
		ContactName:  optional(v.ContactName),
		ContactEmail: optional(v.ContactEmail),
		Category:     optional(v.Category),
		RiskRating:   riskLevels.backend(v.RiskLevel),
		Status:       vendorStatuses.backend(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (VendorAdapter) ToLocal(b models.BackendVendor) (models.Vendor, error) {
	if strings.TrimSpace(b.ID) == "" {
		return models.Vendor{}, malformed("vendor without id")
	}
	if strings.TrimSpace(b.CompanyName) == "" {
		return models.Vendor{}, malformed("vendor " + b.ID + " without company name")
	}

	return models.Vendor{
		ID:           b.ID,
		Name:         b.CompanyName,
		ContactName:  deref(b.ContactName),
		ContactEmail: deref(b.ContactEmail),
		Category:     deref(b.Category),
		RiskLevel:    riskLevels.local(b.RiskRating),
		Status:       vendorStatuses.local(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}, nil
}
