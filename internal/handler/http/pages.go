// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/utils"
)

type lockedPagesResponse struct {
	Pages []string `json:"pages"`
}

// getLockedPages lists the pages that carry a locked container.
func (h *Handler) getLockedPages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pages, err := h.services.SiteService.LockedPages(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLockedPages").Msg("failed to list locked pages")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if pages == nil {
		pages = []string{}
	}

	utils.WriteJSON(w, lockedPagesResponse{Pages: pages}, http.StatusOK)
}
