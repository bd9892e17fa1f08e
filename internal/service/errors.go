// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is returned when a reconciliation pass is requested
	// while another one is still running. No backend call is made.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrSyncFailed wraps the failure of a pull reconciliation.
	ErrSyncFailed = errors.New("sync with backend failed")

	// ErrFlushFailed is returned by ApplyPendingChanges when at least one
	// queued change could not be pushed.
	ErrFlushFailed = errors.New("some pending changes failed")

	// ErrPushFailed is returned by a mutation whose push failed and was
	// rolled back.
	ErrPushFailed = errors.New("push to backend failed")

	// ErrEntityNotFound is returned when a mutation targets an unknown id.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDuplicateID is returned when a created entity reuses an existing id.
	ErrDuplicateID = errors.New("entity id already exists")

	// ErrInvalidInterval is returned for a non-positive sync interval.
	ErrInvalidInterval = errors.New("sync interval must be positive")
)
