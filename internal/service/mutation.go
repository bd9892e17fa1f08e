// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// mutationOp is the kind of change a mutation applies.
type mutationOp int

const (
	opCreate mutationOp = iota
	opUpdate
	opDelete
)

func (o mutationOp) String() string {
	switch o {
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// mutationState is the position of a mutation in its lifecycle:
//
//	applied -> confirmed | rolled_back   (sync enabled)
//	applied -> queued | local_only       (sync disabled)
type mutationState int

const (
	mutationApplied mutationState = iota
	mutationConfirmed
	mutationRolledBack
	mutationQueued
	mutationLocalOnly
)

func (s mutationState) String() string {
	switch s {
	case mutationApplied:
		return "applied"
	case mutationConfirmed:
		return "confirmed"
	case mutationRolledBack:
		return "rolled_back"
	case mutationQueued:
		return "queued"
	case mutationLocalOnly:
		return "local_only"
	default:
		return "unknown"
	}
}

// terminal reports whether no further transition is allowed.
func (s mutationState) terminal() bool {
	return s != mutationApplied
}

// mutation records one optimistic change so that it can be confirmed with
// the backend value or undone exactly.
type mutation[L any] struct {
	op    mutationOp
	id    string
	index int // position of the entity before the change, -1 for create
	// before is nil for creates, after is nil for deletes.
	before *L
	after  *L
	state  mutationState
	err    string
}

// transition moves m to next. Transitions out of a terminal state are
// ignored and reported as false.
func (m *mutation[L]) transition(next mutationState) bool {
	if m.state.terminal() {
		return false
	}
	m.state = next
	return true
}
