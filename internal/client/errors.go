package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrServer     = errors.New("server error")
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, body)
	case resp.StatusCode() >= http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
