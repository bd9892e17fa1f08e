// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"strings"

	"github.com/MKhiriev/go-admin-sync/models"
)

var employeeStatuses = newEnumTable(map[models.EmployeeStatus]string{
	models.EmployeeActive:     "ACTIVE",
	models.EmployeeInactive:   "INACTIVE",
	models.EmployeeOnLeave:    "ON_LEAVE",
	models.EmployeeTerminated: "TERMINATED",
}, models.EmployeeActive)

// EmployeeAdapter converts employees.
//
// Lossy fields:
//   - Name is synthesised from firstName and lastName. On the way out it is
//     split on the first space, so the first/last parts round trip but a
//     first name containing a space does not.
//   - Department "Unassigned" (and empty) is sent as an absent value and an
//     absent department comes back as "Unassigned".
//   - Email is sent trimmed of surrounding whitespace.
type EmployeeAdapter struct{}

func NewEmployeeAdapter() EmployeeAdapter { return EmployeeAdapter{} }

func (EmployeeAdapter) ToBackend(e models.Employee) models.BackendEmployee {
	first, last := SplitName(e.Name)

	var department *string
	if e.Department != models.UnassignedDepartment {
		department = optional(e.Department)
	}

	return models.BackendEmployee{
		ID:         e.ID,
		FirstName:  first,
		LastName:   last,
		Email:      strings.TrimSpace(e.Email),
		Department: department,
		JobTitle:   e.Position,
		Status:     employeeStatuses.backend(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (EmployeeAdapter) ToLocal(b models.BackendEmployee) (models.Employee, error) {
	if strings.TrimSpace(b.ID) == "" {
		return models.Employee{}, malformed("employee without id")
	}
	name := JoinName(b.FirstName, b.LastName)
	if name == "" {
		return models.Employee{}, malformed("employee " + b.ID + " without name")
	}

	department := deref(b.Department)
	if strings.TrimSpace(department) == "" {
		department = models.UnassignedDepartment
	}

	return models.Employee{
		ID:         b.ID,
		Name:       name,
		Email:      b.Email,
		Department: department,
		Position:   b.JobTitle,
		Status:     employeeStatuses.local(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}, nil
}

// SplitName splits a display name into first and last parts on the first
// run of whitespace.
func SplitName(name string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}

// JoinName composes a display name from its parts.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
