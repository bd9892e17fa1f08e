// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control surface of the client.
//
// Every route maps onto one LocalStore operation: the sync controls under
// /api/sync and the entity collections under /api/{kind}. Request tracing,
// access logging and response compression are applied before requests
// reach a handler.
package http
