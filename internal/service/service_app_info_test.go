package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-page-gate/internal/logger"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService("1.0.0", logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService("", logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService("v1.2.3-beta+build.42", logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(ctx))
}

func TestPageSection(t *testing.T) {
	assert.Equal(t, "secret", pageSection("/blog/secret/post"))
	assert.Equal(t, "", pageSection("/blog"))
	assert.Equal(t, "", pageSection(""))
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "/", pagePath("index.html"))
	assert.Equal(t, "/blog/secret/", pagePath("blog/secret/index.html"))
	assert.Equal(t, "/blog/about.html", pagePath("blog/about.html"))
}
