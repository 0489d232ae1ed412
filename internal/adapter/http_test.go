// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
)

func newTestAdapter(t *testing.T) PageAdapter {
	t.Helper()
	return NewHTTPPageAdapter(config.ClientAdapter{
		RequestTimeout: 2 * time.Second,
		UserAgent:      "page-gate-test",
	}, logger.Nop())
}

func TestFetchPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/blog/secret/", r.URL.Path)
		assert.Equal(t, "hunter2", r.URL.Query().Get("k"))
		assert.Equal(t, "page-gate-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>locked</html>"))
	}))
	defer srv.Close()

	page, err := newTestAdapter(t).FetchPage(context.Background(), srv.URL+"/blog/secret/?k=hunter2")
	require.NoError(t, err)
	assert.Equal(t, "<html>locked</html>", string(page.Body))
	assert.Equal(t, "/blog/secret/", page.URL.Path)
	assert.Equal(t, "hunter2", page.URL.Query().Get("k"))
}

func TestFetchPage_FollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/blog/secret", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blog/secret/?"+r.URL.RawQuery, http.StatusMovedPermanently)
	})
	mux.HandleFunc("/blog/secret/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	page, err := newTestAdapter(t).FetchPage(context.Background(), srv.URL+"/blog/secret?k=x")
	require.NoError(t, err)
	assert.Equal(t, "/blog/secret/", page.URL.Path)
	assert.Equal(t, "x", page.URL.Query().Get("k"))
}

func TestFetchPage_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusTeapot, want: ErrPageNotFetched},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t).FetchPage(context.Background(), srv.URL)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrPageNotFetched)
		})
	}
}

func TestFetchPage_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newTestAdapter(t).FetchPage(context.Background(), addr)
	assert.ErrorIs(t, err, ErrPageNotFetched)
}

func TestNormalizePageURL(t *testing.T) {
	u, err := normalizePageURL("  localhost:1313/blog/secret/  ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1313/blog/secret/", u.String())

	for _, bad := range []string{"", "ftp://host/file", "http://", "http://%zz"} {
		_, err = normalizePageURL(bad)
		assert.ErrorIs(t, err, ErrInvalidPageURL, bad)
	}
}

func TestFetchPage_InvalidURL(t *testing.T) {
	_, err := newTestAdapter(t).FetchPage(context.Background(), "mailto:someone")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid page url"))
}

func TestLoggableURL(t *testing.T) {
	u, err := url.Parse("https://user:pw@example.com/blog/secret/?k=hunter2#top")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/blog/secret/", loggableURL(u))
	assert.Equal(t, "hunter2", u.Query().Get("k"))
}
