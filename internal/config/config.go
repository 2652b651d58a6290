package config

import (
	"time"
)

// DesktopConfig is the top-level configuration container for the desktop
// node. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type DesktopConfig struct {
	// Server holds network address and timeout settings for the status/sync
	// HTTP service.
	Server Server `envPrefix:"SERVER_"`

	// Tailnet holds the local tailnet control API settings.
	Tailnet Tailnet `envPrefix:"TAILNET_"`

	// Storage holds paths for durable desktop-side state.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// MobileConfig is the top-level configuration container for the mobile
// client application.
type MobileConfig struct {
	// Client holds the remote sync client settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the status/sync service
	// listens, in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Tailnet holds settings for the tailnet control-plane IPC. The socket is a
// local-only endpoint; it is never reachable off-node.
type Tailnet struct {
	// SocketPath is the filesystem path of the tailscaled control socket.
	// Env: TAILNET_SOCKET_PATH
	SocketPath string `env:"SOCKET_PATH"`

	// RefreshInterval controls how often the peer cache and the inbox
	// fallback check are refreshed from the control API.
	// Env: TAILNET_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Storage holds filesystem locations for the desktop node's durable state.
type Storage struct {
	// ProjectsFile is the JSON document holding the sync-project table.
	// Env: STORAGE_PROJECTS_FILE
	ProjectsFile string `env:"PROJECTS_FILE"`

	// UploadRoot is the directory that PUT /upload/{path} writes under.
	// Env: STORAGE_UPLOAD_ROOT
	UploadRoot string `env:"UPLOAD_ROOT"`

	// HistoryDSN is the sqlite DSN of the transfer-history database.
	// Env: STORAGE_HISTORY_DSN
	HistoryDSN string `env:"HISTORY_DSN"`
}

// Client holds the mobile-side remote sync client settings.
type Client struct {
	// ServerURL is the base URL of the desktop status/sync service.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// PollInterval is the fixed interval between periodic polls of the
	// desktop service (e.g. "3s").
	// Env: CLIENT_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// CommandSlice is the short sleep between loop iterations; it bounds
	// command latency independently of PollInterval (e.g. "100ms").
	// Env: CLIENT_COMMAND_SLICE
	CommandSlice time.Duration `env:"COMMAND_SLICE"`

	// RequestTimeout bounds every HTTP call issued by the poll loop.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StateDir is the writable directory holding the peer cache, the
	// project mirror, and the client log file.
	// Env: CLIENT_STATE_DIR
	StateDir string `env:"STATE_DIR"`

	// OutputDir is where downloaded and pulled files are saved.
	// Env: CLIENT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// GetDesktopConfig loads, merges, and validates the desktop node
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *DesktopConfig or an error if any source fails
// to load or the final config fails validation.
func GetDesktopConfig() (*DesktopConfig, error) {
	return newDesktopBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetMobileConfig loads, merges, and validates the mobile client
// configuration. Source priority matches [GetDesktopConfig].
func GetMobileConfig() (*MobileConfig, error) {
	return newMobileBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
