package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks malformed or out-of-range caller input. It is
// surfaced immediately and never retried.
var ErrInvalidParameter = errors.New("invalid parameter")

// Backend error categories, derived from the reporting backend's status code.
const (
	BackendCategoryAuth           = "auth"
	BackendCategoryQuota          = "quota"
	BackendCategoryInvalidRequest = "invalid_request"
	BackendCategoryUnavailable    = "unavailable"
)

// BackendError is a failure reported by the external analytics backend. It
// propagates unchanged through the cache to the caller; failures are never
// cached and never replaced with stale data.
type BackendError struct {
	Code     int
	Category string
	Message  string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("analytics backend error (%s, http %d): %s", e.Category, e.Code, e.Message)
}

// MalformedRowError describes a single backend row that failed normalization.
// The normalizer drops such rows with a diagnostic instead of failing the
// whole table.
type MalformedRowError struct {
	Index  int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed report row %d: %s", e.Index, e.Reason)
}
