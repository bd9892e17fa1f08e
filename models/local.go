// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UnassignedDepartment is the local sentinel for an employee without a
// department. It never reaches the backend.
const UnassignedDepartment = "Unassigned"

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeInactive   EmployeeStatus = "inactive"
	EmployeeOnLeave    EmployeeStatus = "on_leave"
	EmployeeTerminated EmployeeStatus = "terminated"
)

// Employee is the local representation of a staff member. Name is a single
// display field; the backend keeps first and last names apart.
type Employee struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Department string         `json:"department"`
	Position   string         `json:"position"`
	Status     EmployeeStatus `json:"status"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

func (e Employee) EntityID() string { return e.ID }

func (e Employee) WithID(id string) Employee {
	e.ID = id
	return e
}

type VendorStatus string

const (
	VendorActive   VendorStatus = "active"
	VendorInactive VendorStatus = "inactive"
	VendorPending  VendorStatus = "pending"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Vendor is a third party supplier.
type Vendor struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ContactName  string       `json:"contact_name"`
	ContactEmail string       `json:"contact_email"`
	Category     string       `json:"category"`
	RiskLevel    RiskLevel    `json:"risk_level"`
	Status       VendorStatus `json:"status"`
	CreatedAt    *time.Time   `json:"created_at,omitempty"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

func (v Vendor) EntityID() string { return v.ID }

func (v Vendor) WithID(id string) Vendor {
	v.ID = id
	return v
}

type SystemStatus string

const (
	SystemOperational SystemStatus = "operational"
	SystemDegraded    SystemStatus = "degraded"
	SystemDown        SystemStatus = "down"
	SystemMaintenance SystemStatus = "maintenance"
)

// System is an internal or SaaS application tracked by the organisation.
type System struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Owner       string       `json:"owner"`
	Criticality RiskLevel    `json:"criticality"`
	Status      SystemStatus `json:"status"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

func (s System) EntityID() string { return s.ID }

func (s System) WithID(id string) System {
	s.ID = id
	return s
}

type RiskStatus string

const (
	RiskOpen      RiskStatus = "open"
	RiskMitigated RiskStatus = "mitigated"
	RiskAccepted  RiskStatus = "accepted"
	RiskClosed    RiskStatus = "closed"
)

// Risk is an entry of the risk register.
type Risk struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Owner       string     `json:"owner"`
	Severity    RiskLevel  `json:"severity"`
	Likelihood  RiskLevel  `json:"likelihood"`
	Status      RiskStatus `json:"status"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (r Risk) EntityID() string { return r.ID }

func (r Risk) WithID(id string) Risk {
	r.ID = id
	return r
}

type AssetStatus string

const (
	AssetAvailable AssetStatus = "available"
	AssetInUse     AssetStatus = "in_use"
	AssetRepair    AssetStatus = "repair"
	AssetRetired   AssetStatus = "retired"
)

// Asset is a piece of hardware or a licence assigned to an employee.
type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	SerialNumber string      `json:"serial_number"`
	AssignedTo   string      `json:"assigned_to"`
	Status       AssetStatus `json:"status"`
	CreatedAt    *time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

func (a Asset) EntityID() string { return a.ID }

func (a Asset) WithID(id string) Asset {
	a.ID = id
	return a
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a unit of administrative work.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Assignee    string       `json:"assignee"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

func (t Task) EntityID() string { return t.ID }

func (t Task) WithID(id string) Task {
	t.ID = id
	return t
}
