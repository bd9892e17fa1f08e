// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-admin-sync/internal/config"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/MKhiriev/go-admin-sync/models"
)

// NewBackendHTTPClient constructs the resty client shared by every
// [RemoteClient] of one backend. It normalises and validates
// adapterCfg.HTTPAddress, applies the request timeout and, when configured,
// the bearer token.
func NewBackendHTTPClient(adapterCfg config.ClientAdapter) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	if token := strings.TrimSpace(adapterCfg.Token); token != "" {
		client.SetAuthToken(token)
	}

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type httpRemoteClient[B any] struct {
	client *utils.HTTPClient
	kind   models.Kind
	path   string

	logger *logger.Logger
}

// NewHTTPRemoteClient constructs an HTTP/REST implementation of
// [RemoteClient] for the resource kind, served under /api/<kind>.
func NewHTTPRemoteClient[B any](client *utils.HTTPClient, kind models.Kind, logger *logger.Logger) RemoteClient[B] {
	return &httpRemoteClient[B]{
		client: client,
		kind:   kind,
		path:   "/api/" + string(kind),
		logger: logger,
	}
}

// FetchAll implements [RemoteClient]. Both a bare JSON array and an
// envelope of the form {"data": [...]} are accepted.
func (h *httpRemoteClient[B]) FetchAll(ctx context.Context) models.Result[[]json.RawMessage] {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.path)
	if err != nil {
		return h.fail("FetchAll", fmt.Errorf("fetch %s request: %w", h.kind, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("FetchAll", fmt.Errorf("fetch %s: %w", h.kind, err))
	}

	records, err := decodeList(resp.Body())
	if err != nil {
		return h.fail("FetchAll", fmt.Errorf("decode %s list: %w", h.kind, err))
	}

	return models.Ok(records)
}

// Create implements [RemoteClient]. An empty 2xx body is treated as an
// echo of the sent record.
func (h *httpRemoteClient[B]) Create(ctx context.Context, record B) models.Result[B] {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post(h.path)
	if err != nil {
		return failRecord[B](h, "Create", fmt.Errorf("create %s request: %w", h.kind, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return failRecord[B](h, "Create", fmt.Errorf("create %s: %w", h.kind, err))
	}

	stored, err := decodeRecord(resp.Body(), record)
	if err != nil {
		return failRecord[B](h, "Create", fmt.Errorf("decode created %s: %w", h.kind, err))
	}
	return models.Ok(stored)
}

// Update implements [RemoteClient].
func (h *httpRemoteClient[B]) Update(ctx context.Context, id string, record B) models.Result[B] {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(record).
		Put(h.path + "/{id}")
	if err != nil {
		return failRecord[B](h, "Update", fmt.Errorf("update %s %s request: %w", h.kind, id, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return failRecord[B](h, "Update", fmt.Errorf("update %s %s: %w", h.kind, id, err))
	}

	stored, err := decodeRecord(resp.Body(), record)
	if err != nil {
		return failRecord[B](h, "Update", fmt.Errorf("decode updated %s %s: %w", h.kind, id, err))
	}
	return models.Ok(stored)
}

// Delete implements [RemoteClient].
func (h *httpRemoteClient[B]) Delete(ctx context.Context, id string) models.Result[struct{}] {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(h.path + "/{id}")
	if err != nil {
		return failRecord[struct{}](h, "Delete", fmt.Errorf("delete %s %s request: %w", h.kind, id, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return failRecord[struct{}](h, "Delete", fmt.Errorf("delete %s %s: %w", h.kind, id, err))
	}

	return models.Ok(struct{}{})
}

func (h *httpRemoteClient[B]) fail(fn string, err error) models.Result[[]json.RawMessage] {
	return failRecord[[]json.RawMessage](h, fn, err)
}

func failRecord[T any, B any](h *httpRemoteClient[B], fn string, err error) models.Result[T] {
	h.logger.Debug().Err(err).
		Str("func", "httpRemoteClient."+fn).
		Str("kind", string(h.kind)).
		Msg("remote operation failed")
	return models.Fail[T](err)
}

type listEnvelope struct {
	Data []json.RawMessage `json:"data"`
}

func decodeList(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrMalformedPayload
	}

	if trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return records, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: no data array", ErrMalformedPayload)
	}
	return env.Data, nil
}

type recordEnvelope[B any] struct {
	Data *B `json:"data"`
}

func decodeRecord[B any](body []byte, sent B) (B, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return sent, nil
	}

	var env recordEnvelope[B]
	if err := json.Unmarshal(trimmed, &env); err == nil && env.Data != nil {
		return *env.Data, nil
	}

	var stored B
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		var zero B
		return zero, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return stored, nil
}
