package analytics

import "errors"

// Sentinel errors for caller precondition violations.
// Insufficient data is never an error: it is reported through the result values.
var (
	ErrMissingStartDate = errors.New("analytics: cycle record is missing start date")
)
