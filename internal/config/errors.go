package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after merging all sources.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTailnetConfigs indicates invalid tailnet IPC settings
	// (for example, missing control socket path).
	ErrInvalidTailnetConfigs = errors.New("invalid tailnet configuration")
	// ErrInvalidStorageConfigs indicates invalid desktop storage settings
	// (for example, missing projects file or upload root).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidClientConfigs indicates invalid mobile client settings
	// (for example, missing server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
