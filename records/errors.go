package records

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport failures: refused connections, resets, timeouts.
	ErrNetwork = errors.New("network failure")
	// ErrHTTPStatus is matched by every *StatusError.
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrParse wraps bodies that do not have the expected record shape.
	ErrParse = errors.New("malformed response")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}
