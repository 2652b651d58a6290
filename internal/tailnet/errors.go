package tailnet

import "errors"

var (
	// ErrFileNotFound indicates the named file is no longer in the tailnet
	// inbox (downloaded or deleted upstream).
	ErrFileNotFound = errors.New("file not found in tailnet inbox")
)
