// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncConfigUpdate is the body of PUT /api/sync/config.
// Only non-nil fields are applied (partial update).
type SyncConfigUpdate struct {
	// SyncEnabled turns pushing of local mutations on or off.
	SyncEnabled *bool `json:"sync_enabled,omitempty"`

	// AutoSync turns the periodic pull on or off.
	AutoSync *bool `json:"auto_sync,omitempty"`

	// SyncIntervalMinutes is the auto-sync period; it must be positive.
	SyncIntervalMinutes *int `json:"sync_interval_minutes,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (u SyncConfigUpdate) Empty() bool {
	return u.SyncEnabled == nil && u.AutoSync == nil && u.SyncIntervalMinutes == nil
}
