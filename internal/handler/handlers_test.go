// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-admin-sync/internal/config"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/service"
	"github.com/MKhiriev/go-admin-sync/internal/store"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore() *service.LocalStore {
	kv := store.NewMemoryKV()
	settings := service.NewSettings(kv, service.SettingsOptions{}, logger.Nop())
	return service.NewLocalStore(service.Syncers{}, settings, kv, utils.NewUUIDGenerator(), logger.Nop())
}

// TestNewHandlers_HTTP verifies that a configured address yields the HTTP
// handler.
func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(newTestLocalStore(), config.ClientServer{HTTPAddress: ":8090"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that without an address no handler is
// created and the sentinel error is returned.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestLocalStore(), config.ClientServer{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
