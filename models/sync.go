// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// DefaultSyncIntervalMinutes is used when SyncConfig.SyncIntervalMinutes is
// not positive.
const DefaultSyncIntervalMinutes = 5

// SyncConfig is mutated only by explicit user action and persisted across
// sessions.
type SyncConfig struct {
	SyncEnabled         bool `json:"sync_enabled"`
	AutoSync            bool `json:"auto_sync"`
	SyncIntervalMinutes int  `json:"sync_interval_minutes"`
}

// Interval returns the auto-sync period.
func (c SyncConfig) Interval() time.Duration {
	if c.SyncIntervalMinutes <= 0 {
		return DefaultSyncIntervalMinutes * time.Minute
	}
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}

// PendingUpdate is a queued update. Patch holds the full post-update local
// record because the backend replaces the entity on PUT.
type PendingUpdate[L any] struct {
	ID    string `json:"id"`
	Patch L      `json:"patch"`
}

// PendingChangeSet holds mutations issued while sync was deferred that have
// not been confirmed against the backend yet. Each slice keeps issuance order.
type PendingChangeSet[L any] struct {
	Create []L                `json:"create"`
	Update []PendingUpdate[L] `json:"update"`
	Delete []string           `json:"delete"`
}

// Len returns the number of queued changes across all three kinds.
func (p PendingChangeSet[L]) Len() int {
	return len(p.Create) + len(p.Update) + len(p.Delete)
}

// Clone returns a copy that shares no backing arrays with p.
func (p PendingChangeSet[L]) Clone() PendingChangeSet[L] {
	return PendingChangeSet[L]{
		Create: slices.Clone(p.Create),
		Update: slices.Clone(p.Update),
		Delete: slices.Clone(p.Delete),
	}
}

// SyncState is the transient synchronisation state of one entity collection.
type SyncState[L any] struct {
	IsOnline       bool                `json:"is_online"`
	IsSyncing      bool                `json:"is_syncing"`
	LastSyncTime   *time.Time          `json:"last_sync_time,omitempty"`
	SyncErrors     []string            `json:"sync_errors"`
	PendingChanges PendingChangeSet[L] `json:"pending_changes"`
}

// Clone returns a deep enough copy to hand out to callers.
func (s SyncState[L]) Clone() SyncState[L] {
	out := s
	out.SyncErrors = slices.Clone(s.SyncErrors)
	out.PendingChanges = s.PendingChanges.Clone()
	if s.LastSyncTime != nil {
		t := *s.LastSyncTime
		out.LastSyncTime = &t
	}
	return out
}

// SyncDiagnostics is the persisted subset of SyncState.
type SyncDiagnostics struct {
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`
	SyncErrors   []string   `json:"sync_errors"`
}

// SyncStatus is a kind-agnostic summary of SyncState used by the control
// surface.
type SyncStatus struct {
	Kind         Kind       `json:"kind"`
	Entities     int        `json:"entities"`
	IsOnline     bool       `json:"is_online"`
	IsSyncing    bool       `json:"is_syncing"`
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`
	SyncErrors   []string   `json:"sync_errors"`
	Pending      int        `json:"pending"`
}

// StoreStatus is the state summary of every collection plus the shared
// config.
type StoreStatus struct {
	Config      SyncConfig   `json:"config"`
	Collections []SyncStatus `json:"collections"`
}
