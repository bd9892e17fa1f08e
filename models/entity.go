// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entity is the constraint shared by every local (UI-facing) entity kind.
//
// The identifier is assigned locally at creation time and never reassigned;
// WithID returns a copy of the entity carrying id, which lets generic code
// stamp a local identifier onto a backend-confirmed value.
type Entity[L any] interface {
	// EntityID returns the stable opaque identifier of the entity.
	EntityID() string

	// WithID returns a copy of the entity with its identifier set to id.
	WithID(id string) L
}

// Kind names an entity collection. It is used as the persistence key suffix,
// the REST resource name and the log field value.
type Kind string

const (
	KindEmployee Kind = "employees"
	KindVendor   Kind = "vendors"
	KindSystem   Kind = "systems"
	KindRisk     Kind = "risks"
	KindAsset    Kind = "assets"
	KindTask     Kind = "tasks"
)

// Kinds lists every entity collection in the order they are synchronised.
var Kinds = []Kind{KindEmployee, KindVendor, KindSystem, KindRisk, KindAsset, KindTask}
