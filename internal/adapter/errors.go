// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors produced by mapHTTPError. They are not used to decide
// whether an operation is retried: validation failures and transient
// failures are retried alike.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedPayload is returned when a 2xx response body cannot be
	// decoded into the expected shape.
	ErrMalformedPayload = errors.New("malformed response payload")

	// ErrEmptyAddress is returned when the backend address is not configured.
	ErrEmptyAddress = errors.New("empty backend address")
)
