// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity turns host online/offline signals into sync state.
//
// A [Source] emits signals; the [Monitor] forwards every one of them to its
// target and, on an offline to online edge with sync enabled, starts one
// background SyncWithBackend. [ProbeSource] derives the signal from the
// backend health endpoint; [ManualSource] lets a host push it directly.
package connectivity
