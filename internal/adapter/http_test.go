// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/config"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a RemoteClient for employees pointed at the test server.
func newTestClient(t *testing.T, serverURL string) RemoteClient[models.BackendEmployee] {
	t.Helper()
	httpClient, err := NewBackendHTTPClient(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		Token:          "secret",
	})
	require.NoError(t, err)
	return NewHTTPRemoteClient[models.BackendEmployee](httpClient, models.KindEmployee, logger.Nop())
}

// ── NewBackendHTTPClient ────────────────────────────────────────────────────

func TestNewBackendHTTPClient_Address(t *testing.T) {
	_, err := NewBackendHTTPClient(config.ClientAdapter{})
	assert.ErrorIs(t, err, ErrEmptyAddress)

	c, err := NewBackendHTTPClient(config.ClientAdapter{HTTPAddress: "localhost:8080/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
}

// ── FetchAll ────────────────────────────────────────────────────────────────

func TestFetchAll_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","firstName":"A"},{"id":"2","firstName":"B"}]`))
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).FetchAll(context.Background())

	require.True(t, res.OK, res.Error)
	assert.Len(t, res.Data, 2)
}

func TestFetchAll_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"1"}]}`))
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).FetchAll(context.Background())

	require.True(t, res.OK, res.Error)
	require.Len(t, res.Data, 1)
	assert.JSONEq(t, `{"id":"1"}`, string(res.Data[0]))
}

func TestFetchAll_FailuresAreNormalised(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantMsg: "internal server error: boom"},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: "", wantMsg: "service unavailable"},
		{name: "garbage body", status: http.StatusOK, body: "<html>", wantMsg: "malformed response payload"},
		{name: "object without data", status: http.StatusOK, body: `{"items":[]}`, wantMsg: "no data array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res := newTestClient(t, srv.URL).FetchAll(context.Background())

			assert.False(t, res.OK)
			assert.Contains(t, res.Error, tt.wantMsg)
		})
	}
}

func TestFetchAll_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := newTestClient(t, url).FetchAll(context.Background())

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "fetch employees request")
}

// ── Create / Update / Delete ────────────────────────────────────────────────

func TestCreate_ReturnsStoredRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.BackendEmployee
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Jane", got.FirstName)

		got.Email = "normalised@example.com"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).Create(context.Background(), models.BackendEmployee{ID: "1", FirstName: "Jane"})

	require.True(t, res.OK, res.Error)
	assert.Equal(t, "normalised@example.com", res.Data.Email)
}

func TestCreate_EmptyBodyEchoesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sent := models.BackendEmployee{ID: "1", FirstName: "Jane"}
	res := newTestClient(t, srv.URL).Create(context.Background(), sent)

	require.True(t, res.OK, res.Error)
	assert.Equal(t, sent, res.Data)
}

func TestCreate_ValidationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("email is required"))
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).Create(context.Background(), models.BackendEmployee{ID: "1"})

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "bad request: email is required")
}

func TestUpdate_EnvelopeAndPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/employees/a%20b", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"data":{"id":"a b","firstName":"Server"}}`))
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).Update(context.Background(), "a b", models.BackendEmployee{ID: "a b", FirstName: "Client"})

	require.True(t, res.OK, res.Error)
	assert.Equal(t, "Server", res.Data.FirstName)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).Update(context.Background(), "x", models.BackendEmployee{})

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "not found")
}

func TestDelete(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/employees/42", r.URL.Path)
		_, _ = io.Copy(io.Discard, r.Body)
		if calls > 1 {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte("still referenced"))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	res := c.Delete(context.Background(), "42")
	assert.True(t, res.OK, res.Error)

	res = c.Delete(context.Background(), "42")
	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "conflict: still referenced")
}
