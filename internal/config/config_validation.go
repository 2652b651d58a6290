package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied to fields left unset by every source. The defaults
// mirror the reference deployment: tailscaled on its standard socket, the
// status service on 8080, a 3s poll with a 100ms command slice.
const (
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultSocketPath      = "/var/run/tailscale/tailscaled.sock"
	defaultRefreshInterval = 5 * time.Second
	defaultRequestTimeout  = 30 * time.Second

	defaultPollInterval         = 3 * time.Second
	defaultCommandSlice         = 100 * time.Millisecond
	defaultClientRequestTimeout = 8 * time.Second
)

func (cfg *DesktopConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Tailnet.SocketPath == "" {
		cfg.Tailnet.SocketPath = defaultSocketPath
	}
	if cfg.Tailnet.RefreshInterval <= 0 {
		cfg.Tailnet.RefreshInterval = defaultRefreshInterval
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfg.Storage.ProjectsFile == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = home
		}
		cfg.Storage.ProjectsFile = filepath.Join(configDir, "meshdrive", "sync_projects.json")
	}
	if cfg.Storage.UploadRoot == "" {
		cfg.Storage.UploadRoot = filepath.Join(home, "meshdrive")
	}
	if cfg.Storage.HistoryDSN == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = home
		}
		cfg.Storage.HistoryDSN = filepath.Join(configDir, "meshdrive", "history.db")
	}
}

// validate checks that the final merged [DesktopConfig] satisfies all
// invariants before it is used at startup.
func (cfg *DesktopConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Tailnet.SocketPath == "" {
		return ErrInvalidTailnetConfigs
	}
	if cfg.Storage.ProjectsFile == "" || cfg.Storage.UploadRoot == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *MobileConfig) applyDefaults() {
	if cfg.Client.PollInterval <= 0 {
		cfg.Client.PollInterval = defaultPollInterval
	}
	if cfg.Client.CommandSlice <= 0 {
		cfg.Client.CommandSlice = defaultCommandSlice
	}
	if cfg.Client.RequestTimeout <= 0 {
		cfg.Client.RequestTimeout = defaultClientRequestTimeout
	}

	if cfg.Client.StateDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		cfg.Client.StateDir = filepath.Join(configDir, "meshdrive-mobile")
	}
	if cfg.Client.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Client.OutputDir = filepath.Join(home, "Downloads")
	}
}

// validate checks that the final merged [MobileConfig] satisfies all
// invariants before it is used at startup.
func (cfg *MobileConfig) validate() error {
	if cfg.Client.ServerURL == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
