// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{name: "pages", data: map[string][]string{"pages": {"/secret/"}}, statusCode: http.StatusOK, wantBody: `{"pages":["/secret/"]}` + "\n"},
		{name: "custom status", data: map[string]string{"error": "not found"}, statusCode: http.StatusNotFound, wantBody: `{"error":"not found"}` + "\n"},
		{name: "nil", data: nil, statusCode: http.StatusOK, wantBody: "null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.statusCode)
			require.NoError(t, err)

			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, len(tt.wantBody), n)
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, make(chan int), http.StatusOK)
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
