// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/store"
	"github.com/MKhiriev/go-admin-sync/models"
)

// EntityStore is the in-process source of truth for one entity collection:
// the entities themselves plus the sync state of the collection.
//
// The mutex guards items and state and is never held across a call to the
// [Syncer]; IsSyncing is a check-and-set guard taken under it, so at most one
// reconciliation pass (pull or flush) runs at a time.
type EntityStore[L models.Entity[L]] struct {
	kind     models.Kind
	syncer   Syncer[L]
	settings *Settings
	kv       store.KV
	ids      IDGenerator
	now      func() time.Time
	logger   *logger.Logger

	mu    sync.Mutex
	items []L
	state models.SyncState[L]

	// serialises snapshot+write so older snapshots never overwrite newer ones
	persistMu sync.Mutex
}

// NewEntityStore returns an empty store for kind. Call Load to restore the
// persisted collection.
func NewEntityStore[L models.Entity[L]](
	kind models.Kind,
	syncer Syncer[L],
	settings *Settings,
	kv store.KV,
	ids IDGenerator,
	logger *logger.Logger,
) *EntityStore[L] {
	return &EntityStore[L]{
		kind:     kind,
		syncer:   syncer,
		settings: settings,
		kv:       kv,
		ids:      ids,
		now:      time.Now,
		logger:   logger.WithKind(string(kind)),
		state:    models.SyncState[L]{IsOnline: true},
	}
}

func entitiesKey(kind models.Kind) string    { return "entities/" + string(kind) }
func diagnosticsKey(kind models.Kind) string { return "diagnostics/" + string(kind) }

// Kind implements [Collection].
func (s *EntityStore[L]) Kind() models.Kind {
	return s.kind
}

// List returns a copy of the collection in display order.
func (s *EntityStore[L]) List() []L {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Get returns the entity with the given id.
func (s *EntityStore[L]) Get(id string) (L, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero L
	i := s.indexOf(id)
	if i < 0 {
		return zero, false
	}
	return s.items[i], true
}

// State returns a snapshot of the sync state.
func (s *EntityStore[L]) State() models.SyncState[L] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Status implements [Collection].
func (s *EntityStore[L]) Status() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state.Clone()
	return models.SyncStatus{
		Kind:         s.kind,
		Entities:     len(s.items),
		IsOnline:     st.IsOnline,
		IsSyncing:    st.IsSyncing,
		LastSyncTime: st.LastSyncTime,
		SyncErrors:   st.SyncErrors,
		Pending:      st.PendingChanges.Len(),
	}
}

// AddEntity appends e to the collection, assigning a fresh id when e has
// none, and then pushes, queues or keeps it local depending on the sync
// config. The returned entity is the backend-confirmed value when pushed.
func (s *EntityStore[L]) AddEntity(ctx context.Context, e L) (L, error) {
	var zero L
	if e.EntityID() == "" {
		e = e.WithID(s.ids.Generate())
	}

	s.mu.Lock()
	if s.indexOf(e.EntityID()) >= 0 {
		s.mu.Unlock()
		return zero, fmt.Errorf("%w: %s", ErrDuplicateID, e.EntityID())
	}
	s.items = append(s.items, e)
	s.mu.Unlock()

	return s.commit(ctx, &mutation[L]{op: opCreate, id: e.EntityID(), index: -1, after: &e})
}

// UpdateEntity applies patch to a copy of the entity identified by id and
// stores the result. The id itself cannot be changed by patch.
func (s *EntityStore[L]) UpdateEntity(ctx context.Context, id string, patch func(*L)) (L, error) {
	var zero L

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return zero, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	before := s.items[i]
	after := before
	patch(&after)
	after = after.WithID(id)
	s.items[i] = after
	s.mu.Unlock()

	return s.commit(ctx, &mutation[L]{op: opUpdate, id: id, index: i, before: &before, after: &after})
}

// DeleteEntity removes the entity identified by id.
func (s *EntityStore[L]) DeleteEntity(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	before := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	s.mu.Unlock()

	_, err := s.commit(ctx, &mutation[L]{op: opDelete, id: id, index: i, before: &before})
	return err
}

// commit drives an applied mutation to its terminal state and persists the
// collection.
func (s *EntityStore[L]) commit(ctx context.Context, m *mutation[L]) (L, error) {
	defer s.persist(ctx)

	var zero L
	if !s.settings.Config().SyncEnabled {
		if s.settings.QueueWhileDisabled() {
			s.enqueue(m)
			m.transition(mutationQueued)
		} else {
			m.transition(mutationLocalOnly)
		}
		s.logMutation(m)
		return s.outcome(m), nil
	}

	switch m.op {
	case opCreate:
		res := s.syncer.PushCreate(ctx, *m.after)
		s.settle(m, res.OK, res.Data, res.Error)
	case opUpdate:
		res := s.syncer.PushUpdate(ctx, m.id, *m.after)
		s.settle(m, res.OK, res.Data, res.Error)
	case opDelete:
		res := s.syncer.PushDelete(ctx, m.id)
		s.settle(m, res.OK, zero, res.Error)
	}
	s.logMutation(m)

	if m.state == mutationRolledBack {
		return zero, fmt.Errorf("%w: %s", ErrPushFailed, m.err)
	}
	return s.outcome(m), nil
}

func (s *EntityStore[L]) settle(m *mutation[L], ok bool, confirmed L, reason string) {
	if ok {
		s.confirm(m, confirmed)
		return
	}
	s.rollback(m, reason)
}

// confirm replaces the optimistic value with the backend one, keeping the
// local id.
func (s *EntityStore[L]) confirm(m *mutation[L], confirmed L) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.op != opDelete {
		c := confirmed.WithID(m.id)
		m.after = &c
		if i := s.indexOf(m.id); i >= 0 {
			s.items[i] = c
		}
	}
	m.transition(mutationConfirmed)
}

// rollback restores the pre-mutation value and records exactly one error.
func (s *EntityStore[L]) rollback(m *mutation[L], reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch m.op {
	case opCreate:
		if i := s.indexOf(m.id); i >= 0 {
			s.items = slices.Delete(s.items, i, i+1)
		}
	case opUpdate:
		if i := s.indexOf(m.id); i >= 0 {
			s.items[i] = *m.before
		}
	case opDelete:
		if s.indexOf(m.id) < 0 {
			s.items = slices.Insert(s.items, min(m.index, len(s.items)), *m.before)
		}
	}

	m.err = s.failure(m.op, m.id, reason)
	s.state.SyncErrors = append(s.state.SyncErrors, m.err)
	m.transition(mutationRolledBack)
}

func (s *EntityStore[L]) enqueue(m *mutation[L]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.PendingChanges
	switch m.op {
	case opCreate:
		p.Create = append(p.Create, *m.after)
	case opUpdate:
		p.Update = append(p.Update, models.PendingUpdate[L]{ID: m.id, Patch: *m.after})
	case opDelete:
		p.Delete = append(p.Delete, m.id)
	}
}

func (s *EntityStore[L]) outcome(m *mutation[L]) L {
	var zero L
	if m.after == nil {
		return zero
	}
	return *m.after
}

func (s *EntityStore[L]) failure(op mutationOp, id, reason string) string {
	return fmt.Sprintf("failed to %s %s %s: %s", op, s.kind, id, reason)
}

func (s *EntityStore[L]) logMutation(m *mutation[L]) {
	ev := s.logger.Debug()
	if m.state == mutationRolledBack {
		ev = s.logger.Warn().Str("error", m.err)
	}
	ev.Str("func", "EntityStore.commit").
		Str("op", m.op.String()).
		Str("id", m.id).
		Str("state", m.state.String()).
		Msg("mutation settled")
}

// SyncWithBackend implements [Collection]. It pulls the backend collection
// and reconciles it with the local one. A second call while a pass is in
// flight returns [ErrSyncInProgress] without touching the backend.
func (s *EntityStore[L]) SyncWithBackend(ctx context.Context) error {
	if err := s.beginSync(); err != nil {
		s.logger.Debug().Str("func", "EntityStore.SyncWithBackend").Msg("sync skipped, already in progress")
		return err
	}
	defer s.endSync()

	return s.pull(ctx)
}

// ApplyPendingChanges implements [Collection]. It pushes every queued create,
// then update, then delete, in issuance order. Drained items leave the queue
// whether they succeeded or not; failures are reported through SyncErrors.
// When every push succeeded the sync errors are cleared and one pull
// reconciliation follows.
func (s *EntityStore[L]) ApplyPendingChanges(ctx context.Context) error {
	if err := s.beginSync(); err != nil {
		return err
	}
	defer s.endSync()

	s.mu.Lock()
	batch := s.state.PendingChanges.Clone()
	s.mu.Unlock()

	var errs []string
	for _, e := range batch.Create {
		res := s.syncer.PushCreate(ctx, e)
		if !res.OK {
			errs = append(errs, s.failure(opCreate, e.EntityID(), res.Error))
			continue
		}
		s.replace(e.EntityID(), res.Data)
	}
	for _, u := range batch.Update {
		res := s.syncer.PushUpdate(ctx, u.ID, u.Patch)
		if !res.OK {
			errs = append(errs, s.failure(opUpdate, u.ID, res.Error))
			continue
		}
		s.replace(u.ID, res.Data)
	}
	for _, id := range batch.Delete {
		if res := s.syncer.PushDelete(ctx, id); !res.OK {
			errs = append(errs, s.failure(opDelete, id, res.Error))
		}
	}

	s.mu.Lock()
	s.state.PendingChanges = drain(s.state.PendingChanges, batch)
	if len(errs) == 0 {
		s.state.SyncErrors = nil
	} else {
		s.state.SyncErrors = append(s.state.SyncErrors, errs...)
	}
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "EntityStore.ApplyPendingChanges").
		Int("pushed", batch.Len()).
		Int("failed", len(errs)).
		Msg("pending changes flushed")

	if len(errs) > 0 {
		s.persist(ctx)
		return fmt.Errorf("%w: %s: %d of %d", ErrFlushFailed, s.kind, len(errs), batch.Len())
	}

	return s.pull(ctx)
}

// drain removes the flushed prefix of every queue, keeping what was queued
// while the flush ran.
func drain[L any](p, flushed models.PendingChangeSet[L]) models.PendingChangeSet[L] {
	return models.PendingChangeSet[L]{
		Create: slices.Clone(p.Create[min(len(flushed.Create), len(p.Create)):]),
		Update: slices.Clone(p.Update[min(len(flushed.Update), len(p.Update)):]),
		Delete: slices.Clone(p.Delete[min(len(flushed.Delete), len(p.Delete)):]),
	}
}

func (s *EntityStore[L]) replace(id string, confirmed L) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items[i] = confirmed.WithID(id)
	}
}

func (s *EntityStore[L]) beginSync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsSyncing {
		return ErrSyncInProgress
	}
	s.state.IsSyncing = true
	return nil
}

func (s *EntityStore[L]) endSync() {
	s.mu.Lock()
	s.state.IsSyncing = false
	s.mu.Unlock()
}

// pull must run with the sync guard held.
func (s *EntityStore[L]) pull(ctx context.Context) error {
	defer s.persist(ctx)

	res := s.syncer.PullAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !res.OK {
		s.state.IsOnline = false
		s.state.SyncErrors = append(s.state.SyncErrors, fmt.Sprintf("failed to sync %s: %s", s.kind, res.Error))
		s.logger.Warn().Str("func", "EntityStore.pull").Str("error", res.Error).Msg("pull failed")
		return fmt.Errorf("%w: %s: %s", ErrSyncFailed, s.kind, res.Error)
	}

	now := s.now()
	s.items = Reconcile(res.Data, s.items)
	s.state.LastSyncTime = &now
	s.state.IsOnline = true

	s.logger.Debug().Str("func", "EntityStore.pull").Int("entities", len(s.items)).Msg("collection reconciled")
	return nil
}

// ClearSyncErrors implements [Collection].
func (s *EntityStore[L]) ClearSyncErrors(ctx context.Context) {
	s.mu.Lock()
	s.state.SyncErrors = nil
	s.mu.Unlock()

	s.persist(ctx)
}

// SetOnline implements [Collection].
func (s *EntityStore[L]) SetOnline(_ context.Context, online bool) {
	s.mu.Lock()
	s.state.IsOnline = online
	s.mu.Unlock()
}

// Load implements [Collection]. It restores the collection and the
// diagnostics written by earlier sessions; missing keys leave the store
// empty.
func (s *EntityStore[L]) Load(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	var items []L
	if _, err := store.LoadJSON(ctx, s.kv, entitiesKey(s.kind), &items); err != nil {
		return fmt.Errorf("load %s: %w", s.kind, err)
	}

	var diag models.SyncDiagnostics
	if _, err := store.LoadJSON(ctx, s.kv, diagnosticsKey(s.kind), &diag); err != nil {
		return fmt.Errorf("load %s diagnostics: %w", s.kind, err)
	}

	s.mu.Lock()
	s.items = items
	s.state.LastSyncTime = diag.LastSyncTime
	s.state.SyncErrors = diag.SyncErrors
	s.mu.Unlock()

	s.logger.Info().Str("func", "EntityStore.Load").Int("entities", len(items)).Msg("collection restored")
	return nil
}

// persist writes the collection and its diagnostics. Failures are logged;
// the in-memory state stays authoritative.
func (s *EntityStore[L]) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	items := slices.Clone(s.items)
	diag := models.SyncDiagnostics{
		LastSyncTime: s.state.LastSyncTime,
		SyncErrors:   slices.Clone(s.state.SyncErrors),
	}
	s.mu.Unlock()

	if items == nil {
		items = []L{}
	}
	if err := store.SaveJSON(ctx, s.kv, entitiesKey(s.kind), items); err != nil {
		s.logger.Err(err).Str("func", "EntityStore.persist").Msg("failed to persist collection")
	}
	if err := store.SaveJSON(ctx, s.kv, diagnosticsKey(s.kind), diag); err != nil {
		s.logger.Err(err).Str("func", "EntityStore.persist").Msg("failed to persist diagnostics")
	}
}

func (s *EntityStore[L]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(e L) bool { return e.EntityID() == id })
}
