// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/mock"
	"github.com/MKhiriev/go-admin-sync/internal/store"
	"github.com/MKhiriev/go-admin-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ AutoSyncer = (*LocalStore)(nil)

type testSyncers struct {
	employees *mock.MockSyncer[models.Employee]
	vendors   *mock.MockSyncer[models.Vendor]
	systems   *mock.MockSyncer[models.System]
	risks     *mock.MockSyncer[models.Risk]
	assets    *mock.MockSyncer[models.Asset]
	tasks     *mock.MockSyncer[models.Task]
}

func newTestLocalStore(t *testing.T, opts SettingsOptions) (*LocalStore, testSyncers, store.KV) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testSyncers{
		employees: mock.NewMockSyncer[models.Employee](ctrl),
		vendors:   mock.NewMockSyncer[models.Vendor](ctrl),
		systems:   mock.NewMockSyncer[models.System](ctrl),
		risks:     mock.NewMockSyncer[models.Risk](ctrl),
		assets:    mock.NewMockSyncer[models.Asset](ctrl),
		tasks:     mock.NewMockSyncer[models.Task](ctrl),
	}
	kv := store.NewMemoryKV()
	settings := NewSettings(kv, opts, logger.Nop())

	s := NewLocalStore(Syncers{
		Employees: m.employees,
		Vendors:   m.vendors,
		Systems:   m.systems,
		Risks:     m.risks,
		Assets:    m.assets,
		Tasks:     m.tasks,
	}, settings, kv, seqIDs(gomock.NewController(t)), logger.Nop())
	return s, m, kv
}

func (m testSyncers) expectPulls(failing models.Kind) {
	pull := func(kind models.Kind) string {
		if kind == failing {
			return "backend unavailable"
		}
		return ""
	}
	m.employees.EXPECT().PullAll(gomock.Any()).Return(result[[]models.Employee](pull(models.KindEmployee)))
	m.vendors.EXPECT().PullAll(gomock.Any()).Return(result[[]models.Vendor](pull(models.KindVendor)))
	m.systems.EXPECT().PullAll(gomock.Any()).Return(result[[]models.System](pull(models.KindSystem)))
	m.risks.EXPECT().PullAll(gomock.Any()).Return(result[[]models.Risk](pull(models.KindRisk)))
	m.assets.EXPECT().PullAll(gomock.Any()).Return(result[[]models.Asset](pull(models.KindAsset)))
	m.tasks.EXPECT().PullAll(gomock.Any()).Return(result[[]models.Task](pull(models.KindTask)))
}

func result[T any](failure string) models.Result[T] {
	if failure != "" {
		return models.FailMsg[T](failure)
	}
	var zero T
	return models.Ok(zero)
}

func TestLocalStore_SyncWithBackend_AllKinds(t *testing.T) {
	s, m, _ := newTestLocalStore(t, syncOn)
	m.expectPulls("")

	require.NoError(t, s.SyncWithBackend(context.Background()))

	for _, st := range s.Status().Collections {
		assert.NotNil(t, st.LastSyncTime, st.Kind)
		assert.True(t, st.IsOnline, st.Kind)
	}
}

func TestLocalStore_SyncWithBackend_JoinsFailures(t *testing.T) {
	s, m, _ := newTestLocalStore(t, syncOn)
	m.expectPulls(models.KindRisk)

	err := s.SyncWithBackend(context.Background())

	require.ErrorIs(t, err, ErrSyncFailed)
	assert.Contains(t, err.Error(), string(models.KindRisk))
	assert.Len(t, s.Risks.State().SyncErrors, 1)
	assert.Empty(t, s.Tasks.State().SyncErrors)
}

func TestLocalStore_SyncWithBackend_AggregateGuard(t *testing.T) {
	s, _, _ := newTestLocalStore(t, syncOn)
	s.syncing.Store(true)

	assert.ErrorIs(t, s.SyncWithBackend(context.Background()), ErrSyncInProgress)
	assert.ErrorIs(t, s.ApplyPendingChanges(context.Background()), ErrSyncInProgress)
}

func TestLocalStore_ApplyPendingChanges(t *testing.T) {
	s, m, _ := newTestLocalStore(t, syncQueue)
	ctx := context.Background()

	task, err := s.Tasks.AddEntity(ctx, models.Task{Title: "Rotate keys"})
	require.NoError(t, err)

	m.tasks.EXPECT().PushCreate(gomock.Any(), task).Return(models.Ok(task))
	m.expectPulls("")

	require.NoError(t, s.ApplyPendingChanges(ctx))
	assert.Equal(t, 0, s.Tasks.State().PendingChanges.Len())
	assert.Equal(t, []models.Task{task}, s.Tasks.List())
}

func TestLocalStore_Config(t *testing.T) {
	s, _, kv := newTestLocalStore(t, SettingsOptions{})
	ctx := context.Background()

	_, err := s.SetSyncEnabled(ctx, true)
	require.NoError(t, err)
	_, err = s.SetAutoSync(ctx, true)
	require.NoError(t, err)
	cfg, err := s.SetSyncInterval(ctx, 15)
	require.NoError(t, err)

	assert.Equal(t, models.SyncConfig{SyncEnabled: true, AutoSync: true, SyncIntervalMinutes: 15}, cfg)
	assert.Equal(t, cfg, s.Config())

	restored := NewSettings(kv, SettingsOptions{}, logger.Nop())
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, cfg, restored.Config())
}

func TestLocalStore_SetSyncInterval_Invalid(t *testing.T) {
	s, _, _ := newTestLocalStore(t, SettingsOptions{})

	for _, minutes := range []int{0, -3} {
		_, err := s.SetSyncInterval(context.Background(), minutes)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	}
	assert.Equal(t, models.DefaultSyncIntervalMinutes, s.Config().SyncIntervalMinutes)
}

func TestLocalStore_SetOnlineAndClearErrors(t *testing.T) {
	s, m, _ := newTestLocalStore(t, syncOn)
	ctx := context.Background()
	m.expectPulls(models.KindVendor)

	require.Error(t, s.SyncWithBackend(ctx))
	s.ClearSyncErrors(ctx)
	s.SetOnline(ctx, false)

	for _, st := range s.Status().Collections {
		assert.Empty(t, st.SyncErrors, st.Kind)
		assert.False(t, st.IsOnline, st.Kind)
	}
}

func TestLocalStore_StatusAndCollection(t *testing.T) {
	s, _, _ := newTestLocalStore(t, syncOn)

	st := s.Status()
	require.Len(t, st.Collections, len(models.Kinds))
	for i, kind := range models.Kinds {
		assert.Equal(t, kind, st.Collections[i].Kind)
		c, ok := s.Collection(kind)
		require.True(t, ok)
		assert.Equal(t, kind, c.Kind())
	}

	_, ok := s.Collection("unknown")
	assert.False(t, ok)
}

func TestLocalStore_Load(t *testing.T) {
	s, _, kv := newTestLocalStore(t, syncLocal)
	ctx := context.Background()

	_, err := s.SetAutoSync(ctx, true)
	require.NoError(t, err)
	v, err := s.Vendors.AddEntity(ctx, models.Vendor{Name: "Acme"})
	require.NoError(t, err)

	restored := NewLocalStore(Syncers{}, NewSettings(kv, syncLocal, logger.Nop()), kv, seqIDs(gomock.NewController(t)), logger.Nop())
	require.NoError(t, restored.Load(ctx))

	assert.True(t, restored.Config().AutoSync)
	assert.Equal(t, []models.Vendor{v}, restored.Vendors.List())
}
