package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// fallbackDetail is used when the server supplies no human-readable detail.
const fallbackDetail = "request failed"

// mapStatus normalizes a non-2xx response to the error taxonomy. The detail,
// when present, comes from the server's {"detail": ...} body.
func mapStatus(status int, detail string) error {
	if detail == "" {
		detail = fallbackDetail
	}
	switch {
	case status == 401:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == 404:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, detail)
	default:
		return fmt.Errorf("server error (%d): %s", status, detail)
	}
}
