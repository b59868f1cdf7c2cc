package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
)

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.1"}

	svc, err := NewAppInfoService(cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	cfg := config.App{Version: "3.1.4"}
	svc, err := NewAppInfoService(cfg, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got)
}
