// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

type fileKV struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	items map[string]json.RawMessage
}

type filePersistedState struct {
	Items map[string]json.RawMessage `json:"items"`
}

// NewFileKV returns a [KV] that keeps every value in memory and rewrites the
// JSON file at path on each Put. An existing file is loaded first.
func NewFileKV(path string) (KV, error) {
	s := &fileKV{
		path:  path,
		items: make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemoryKV returns a [KV] that never touches the filesystem.
func NewMemoryKV() KV {
	return &fileKV{
		inMemory: true,
		items:    make(map[string]json.RawMessage),
	}
}

func (s *fileKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (s *fileKV) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w (key=%s)", ErrInvalidValue, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = slices.Clone(value)
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}

	return nil
}

func (s *fileKV) Close() error {
	return nil
}

func (s *fileKV) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}

	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

func (s *fileKV) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	state := filePersistedState{Items: maps.Clone(s.items)}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	// write then rename so a crash never leaves a truncated file
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
