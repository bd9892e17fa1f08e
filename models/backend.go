// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Backend wire shapes. Field names follow the REST API (camelCase), enum
// values are upper-case and optional values are nullable.

type BackendEmployee struct {
	ID         string     `json:"id,omitempty"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Department *string    `json:"department,omitempty"`
	JobTitle   string     `json:"jobTitle"`
	Status     string     `json:"status"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type BackendVendor struct {
	ID           string     `json:"id,omitempty"`
	CompanyName  string     `json:"companyName"`
	ContactName  *string    `json:"contactName,omitempty"`
	ContactEmail *string    `json:"contactEmail,omitempty"`
	Category     *string    `json:"category,omitempty"`
	RiskRating   string     `json:"riskRating"`
	Status       string     `json:"status"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type BackendSystem struct {
	ID          string     `json:"id,omitempty"`
	SystemName  string     `json:"systemName"`
	Description *string    `json:"description,omitempty"`
	OwnerEmail  *string    `json:"ownerEmail,omitempty"`
	Criticality string     `json:"criticality"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type BackendRisk struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	OwnerEmail  *string    `json:"ownerEmail,omitempty"`
	Impact      string     `json:"impact"`
	Likelihood  string     `json:"likelihood"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type BackendAsset struct {
	ID           string     `json:"id,omitempty"`
	AssetName    string     `json:"assetName"`
	AssetType    string     `json:"assetType"`
	SerialNumber *string    `json:"serialNumber,omitempty"`
	EmployeeID   *string    `json:"employeeId,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type BackendTask struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	AssigneeID  *string    `json:"assigneeId,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *string    `json:"dueDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
