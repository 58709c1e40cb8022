package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrSourceUnavailable signals that no usable source is wired.
var ErrSourceUnavailable = errors.New("source unavailable")

// RequestError captures a non-2xx response from the upstream API.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("request failed: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("request failed: %s", e.Status)
}

// AsRequestError attempts to unwrap an error into a RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsTimeout reports whether err represents an exceeded request deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
