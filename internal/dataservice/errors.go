package dataservice

import (
	"errors"
	"fmt"
)

// errEmptyPayload marks an upstream response with no records; it triggers the
// same fallback path as a fetch failure but is never cached.
var errEmptyPayload = errors.New("upstream returned empty payload")

// AggregateError reports an unexpected failure in the all-data orchestration
// itself, outside the per-category isolation.
type AggregateError struct {
	Cause any
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("dashboard aggregation failed: %v", e.Cause)
}

// AsAggregateError attempts to unwrap an error into an AggregateError.
func AsAggregateError(err error) (*AggregateError, bool) {
	var aggErr *AggregateError
	if errors.As(err, &aggErr) {
		return aggErr, true
	}
	return nil, false
}
