// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-page-gate/internal/crypto"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/store"
)

const storageKeySuffix = "key"

type accessKeyService struct {
	keys       store.KeyValueStore
	cipher     crypto.PageCipher
	namespace  string
	queryParam string
	logger     *logger.Logger
}

// NewAccessKeyService creates an AccessKeyService. Storage keys look like
// "<namespace>:<section>:key"; queryParam names the URL parameter that may
// carry an access phrase.
func NewAccessKeyService(keys store.KeyValueStore, cipher crypto.PageCipher, namespace, queryParam string, logger *logger.Logger) AccessKeyService {
	return &accessKeyService{
		keys:       keys,
		cipher:     cipher,
		namespace:  namespace,
		queryParam: queryParam,
		logger:     logger,
	}
}

// StorageKey implements AccessKeyService.
func (s *accessKeyService) StorageKey(path string) string {
	return s.namespace + ":" + pageSection(path) + ":" + storageKeySuffix
}

// pageSection returns the second segment of path once leading and trailing
// slashes are trimmed, or "" when there is none. "/blog/secret/post" gives
// "secret".
func pageSection(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[1]
}

// ResolvePassword implements AccessKeyService.
func (s *accessKeyService) ResolvePassword(ctx context.Context, page *url.URL) (crypto.KeyMaterial, bool, error) {
	storageKey := s.StorageKey(page.Path)

	stored, err := s.keys.Get(ctx, storageKey)
	switch {
	case err == nil && stored != "":
		return crypto.KeyMaterial(stored), true, nil
	case err != nil && !errors.Is(err, store.ErrKeyNotFound):
		return "", false, err
	}

	raw := page.Query().Get(s.queryParam)
	if raw == "" {
		return "", false, nil
	}

	material := s.cipher.Normalize(raw)
	if err = s.keys.Set(ctx, storageKey, material.String()); err != nil {
		s.logger.Warn().Err(err).
			Str("storage_key", storageKey).
			Msg("failed to store access key from url")
	}

	return material, true, nil
}

// Remember implements AccessKeyService.
func (s *accessKeyService) Remember(ctx context.Context, page *url.URL, material crypto.KeyMaterial) error {
	return s.keys.Set(ctx, s.StorageKey(page.Path), material.String())
}
