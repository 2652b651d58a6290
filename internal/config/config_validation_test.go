package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopConfig_Defaults(t *testing.T) {
	cfg := &DesktopConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultSocketPath, cfg.Tailnet.SocketPath)
	assert.Equal(t, defaultRefreshInterval, cfg.Tailnet.RefreshInterval)
	assert.NotEmpty(t, cfg.Storage.ProjectsFile)
	assert.NotEmpty(t, cfg.Storage.UploadRoot)
	assert.NotEmpty(t, cfg.Storage.HistoryDSN)
}

func TestMobileConfig_Validate(t *testing.T) {
	cfg := &MobileConfig{}
	cfg.applyDefaults()
	assert.ErrorIs(t, cfg.validate(), ErrInvalidClientConfigs)

	cfg.Client.ServerURL = "http://desktop:8080"
	require.NoError(t, cfg.validate())
	assert.Equal(t, 3*time.Second, cfg.Client.PollInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.CommandSlice)
	assert.Equal(t, 8*time.Second, cfg.Client.RequestTimeout)
}

func TestNetAddress_Set(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	require.NoError(t, a.Set("127.0.0.1:9090"))
	assert.Equal(t, "127.0.0.1:9090", a.String())

	assert.Error(t, a.Set("no-port"))
	assert.Error(t, a.Set("host:notanumber"))
	assert.Error(t, a.Set("bogus-host:80"))
	assert.Error(t, a.Set("localhost:0"))
}
