// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/url"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/crypto"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/store"
)

// ClientServices bundles the long-lived client services. A [GateService]
// lives for one page load and is built with NewGate.
type ClientServices struct {
	Cipher     crypto.PageCipher
	AccessKeys AccessKeyService

	logger *logger.Logger
}

func NewClientServices(keys store.KeyValueStore, cfg config.ClientApp, log *logger.Logger) *ClientServices {
	cipher := crypto.NewPageCipher()

	return &ClientServices{
		Cipher:     cipher,
		AccessKeys: NewAccessKeyService(keys, cipher, cfg.Namespace, cfg.QueryParam, log),
		logger:     log,
	}
}

// NewGate builds the gate for one loaded page.
func (s *ClientServices) NewGate(container Container, banner Banner, page *url.URL, alerter Alerter) GateService {
	return NewGateService(container, banner, page, s.AccessKeys, s.Cipher, alerter, s.logger)
}
