// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client application runtime.
//
// It wires persistence, the backend adapter, the local store, background
// workers and the optional control surface into a single process lifecycle.
package client
