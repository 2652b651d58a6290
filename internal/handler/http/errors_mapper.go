package http

import (
	"errors"
	"net/http"

	"github.com/meshdrive/meshdrive/internal/service"
	"github.com/meshdrive/meshdrive/internal/store"
	"github.com/meshdrive/meshdrive/internal/tailnet"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyPath:       http.StatusBadRequest,
	service.ErrInvalidProject:  http.StatusBadRequest,
	service.ErrPathOutsideRoot: http.StatusBadRequest,
	service.ErrPathNotAbsolute: http.StatusBadRequest,

	service.ErrNoReceivedFile: http.StatusNotFound,
	service.ErrNotADirectory:  http.StatusNotFound,
	service.ErrNotAFile:       http.StatusNotFound,

	store.ErrProjectNotFound: http.StatusNotFound,

	tailnet.ErrFileNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
