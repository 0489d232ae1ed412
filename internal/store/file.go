// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileStore keeps all keys in a single JSON document on disk, the local
// equivalent of a browser's origin-scoped storage.
type fileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]fileEntry
}

type fileEntry struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type filePersistedState struct {
	Keys map[string]fileEntry `json:"keys"`
}

// NewFileStore opens (or lazily creates) the JSON store at path.
func NewFileStore(path string) (Storage, error) {
	s := &fileStore{
		path:   path,
		values: make(map[string]fileEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return e.Value, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[key]
	s.values[key] = fileEntry{Value: value, UpdatedAt: time.Now().UTC()}

	if err := s.persist(); err != nil {
		if existed {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read key store file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode key store file: %w", err)
	}
	if st.Keys != nil {
		s.values = st.Keys
	}

	return nil
}

func (s *fileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create key store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Keys: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key store: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write key store file: %w", err)
	}

	return nil
}
