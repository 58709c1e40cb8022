package adapter

import (
	"errors"
	"fmt"
)

// TransformError reports a raw record that cannot be normalized because an
// identity field is missing. Optional-field gaps never raise it; the output
// simply degrades.
type TransformError struct {
	Op     string
	Index  int
	Reason string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s: record %d: %s", e.Op, e.Index, e.Reason)
}

// AsTransformError attempts to unwrap an error into a TransformError.
func AsTransformError(err error) (*TransformError, bool) {
	var tErr *TransformError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}
