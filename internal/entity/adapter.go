// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package entity translates entities between their local (UI-facing) shape
// and the backend wire shape.
//
// Every adapter is pure and stateless: no I/O, no shared state. The local
// and backend schemas are allowed to diverge (split names, upper-case enum
// values, nullable optionals) and this package is the only place that knows
// how. Enumerated values are remapped through fixed bidirectional tables;
// backend values outside a table map to a conservative local default.
package entity

import (
	"errors"
	"strings"
)

// ErrMalformedRecord is returned by ToLocal when a backend record is
// structurally unusable (for example it has no identifier).
var ErrMalformedRecord = errors.New("malformed backend record")

// Adapter converts between a local entity L and its backend representation B.
type Adapter[L any, B any] interface {
	// ToBackend converts a local entity into the wire shape. It never fails;
	// local sentinels are translated back to absent values.
	ToBackend(local L) B

	// ToLocal converts a backend record into the local shape. It returns an
	// error wrapping [ErrMalformedRecord] only for records that cannot be
	// represented locally at all.
	ToLocal(remote B) (L, error)
}

// enumTable is a fixed bidirectional mapping between a local enum and its
// backend spelling.
type enumTable[L ~string] struct {
	toBackend    map[L]string
	toLocal      map[string]L
	localDefault L
}

func newEnumTable[L ~string](pairs map[L]string, localDefault L) enumTable[L] {
	t := enumTable[L]{
		toBackend:    make(map[L]string, len(pairs)),
		toLocal:      make(map[string]L, len(pairs)),
		localDefault: localDefault,
	}
	for l, b := range pairs {
		t.toBackend[l] = b
		t.toLocal[b] = l
	}
	return t
}

func (t enumTable[L]) backend(v L) string {
	if b, ok := t.toBackend[v]; ok {
		return b
	}
	return t.toBackend[t.localDefault]
}

func (t enumTable[L]) local(v string) L {
	if l, ok := t.toLocal[strings.ToUpper(strings.TrimSpace(v))]; ok {
		return l
	}
	return t.localDefault
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func malformed(reason string) error {
	return errors.Join(ErrMalformedRecord, errors.New(reason))
}
