// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// serveSite delivers files of the published site unchanged. Directory
// paths resolve to their index.html.
func (h *Handler) serveSite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	http.FileServer(h.site).ServeHTTP(w, r)
}
