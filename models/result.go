// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the discriminated outcome of a remote operation. Exactly one of
// Data (when OK) or Error (when not OK) is meaningful.
type Result[T any] struct {
	OK    bool   `json:"ok"`
	Data  T      `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Ok wraps data into a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Fail wraps err into a failed Result. A nil err still produces a failure
// with a generic message so that callers never see an empty error string.
func Fail[T any](err error) Result[T] {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{OK: false, Error: msg}
}

// FailMsg wraps a plain message into a failed Result.
func FailMsg[T any](msg string) Result[T] {
	return Result[T]{OK: false, Error: msg}
}
