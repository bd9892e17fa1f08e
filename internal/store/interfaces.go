// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_mock.go -package=mock

// KV is the host persistence contract. Values are opaque JSON documents
// addressed by key (for example "sync_config" or "entities/employees").
type KV interface {
	// Get returns the value stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}
