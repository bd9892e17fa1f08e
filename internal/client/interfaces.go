// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of a runnable sync client.
type Client interface {
	// Run blocks until the process is asked to stop.
	Run() error
}

var _ Client = (*App)(nil)
