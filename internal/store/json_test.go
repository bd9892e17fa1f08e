// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-admin-sync/internal/mock"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadJSON_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	kv.EXPECT().Get(gomock.Any(), "doc").Return([]byte(`{"name":"a","count":2}`), nil)

	var got testDoc
	found, err := LoadJSON(context.Background(), kv, "doc", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testDoc{Name: "a", Count: 2}, got)
}

func TestLoadJSON_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	kv.EXPECT().Get(gomock.Any(), "doc").Return(nil, ErrKeyNotFound)

	got := testDoc{Name: "default"}
	found, err := LoadJSON(context.Background(), kv, "doc", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "default", got.Name)
}

func TestLoadJSON_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	boom := errors.New("boom")
	kv.EXPECT().Get(gomock.Any(), "doc").Return(nil, boom)

	found, err := LoadJSON(context.Background(), kv, "doc", &testDoc{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)
}

func TestLoadJSON_DecodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	kv.EXPECT().Get(gomock.Any(), "doc").Return([]byte(`[1,2]`), nil)

	found, err := LoadJSON(context.Background(), kv, "doc", &testDoc{})
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "decode doc")
}

func TestSaveJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	kv.EXPECT().Put(gomock.Any(), "doc", []byte(`{"name":"b","count":3}`)).Return(nil)

	require.NoError(t, SaveJSON(context.Background(), kv, "doc", testDoc{Name: "b", Count: 3}))
}

func TestSaveJSON_EncodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	err := SaveJSON(context.Background(), kv, "doc", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode doc")
}
