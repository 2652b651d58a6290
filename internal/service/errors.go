package service

import "errors"

var (
	// ErrNoReceivedFile indicates nothing has been received over the overlay
	// yet, so there is no "last file" to download.
	ErrNoReceivedFile = errors.New("no file has been received yet")

	// ErrNotADirectory indicates a browse path that does not exist or is not
	// a directory.
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrNotAFile indicates a pull path that does not exist or is not a
	// regular file.
	ErrNotAFile = errors.New("path is not a file")

	// ErrEmptyPath indicates a missing required path parameter.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrPathOutsideRoot indicates an upload path that escapes the upload
	// root after cleaning.
	ErrPathOutsideRoot = errors.New("path escapes the upload root")

	// ErrPathNotAbsolute indicates a sync upload target that is not an
	// absolute path.
	ErrPathNotAbsolute = errors.New("path must be absolute")

	// ErrInvalidProject indicates a create-project request with a missing
	// local or remote path.
	ErrInvalidProject = errors.New("project paths must not be empty")
)
