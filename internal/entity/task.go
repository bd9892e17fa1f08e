// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-admin-sync/models"
)

var (
	taskStatuses = newEnumTable(map[models.TaskStatus]string{
		models.TaskTodo:       "TODO",
		models.TaskInProgress: "IN_PROGRESS",
		models.TaskDone:       "DONE",
	}, models.TaskTodo)

	taskPriorities = newEnumTable(map[models.TaskPriority]string{
		models.PriorityLow:    "LOW",
		models.PriorityMedium: "MEDIUM",
		models.PriorityHigh:   "HIGH",
	}, models.PriorityMedium)
)

// dateOnly is accepted besides RFC 3339 for due dates entered without a time.
const dateOnly = "2006-01-02"

// TaskAdapter converts tasks. Due dates travel as RFC 3339 strings.
//
// Lossy fields:
//   - DueDate is sent in UTC with second precision, so the zone and any
//     sub-second part do not round trip. The instant does.
//   - Title is sent trimmed of surrounding whitespace.
type TaskAdapter struct{}

func NewTaskAdapter() TaskAdapter { return TaskAdapter{} }

func (TaskAdapter) ToBackend(t models.Task) models.BackendTask {
	var due *string
	if t.DueDate != nil {
		s := t.DueDate.UTC().Format(time.RFC3339)
		due = &s
	}

	return models.BackendTask{
		ID:          t.ID,
		Title:       strings.TrimSpace(t.Title),
		Description: optional(t.Description),
		AssigneeID:  optional(t.Assignee),
		Priority:    taskPriorities.backend(t.Priority),
		Status:      taskStatuses.backend(t.Status),
		DueDate:     due,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (TaskAdapter) ToLocal(b models.BackendTask) (models.Task, error) {
	if strings.TrimSpace(b.ID) == "" {
		return models.Task{}, malformed("task without id")
	}
	if strings.TrimSpace(b.Title) == "" {
		return models.Task{}, malformed("task " + b.ID + " without title")
	}

	var due *time.Time
	if raw := strings.TrimSpace(deref(b.DueDate)); raw != "" {
		parsed, err := parseDueDate(raw)
		if err != nil {
			return models.Task{}, malformed("task " + b.ID + " has invalid due date " + raw)
		}
		due = &parsed
	}

	return models.Task{
		ID:          b.ID,
		Title:       b.Title,
		Description: deref(b.Description),
		Assignee:    deref(b.AssigneeID),
		Priority:    taskPriorities.local(b.Priority),
		Status:      taskStatuses.local(b.Status),
		DueDate:     due,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}, nil
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
