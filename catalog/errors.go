package catalog

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced by the catalog core. Handlers translate these to
// HTTP statuses; everything else (empty universe, zero matches, absent price
// bounds) is a valid result, not an error.
var (
	// ErrNotFound - the requested category or product does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument - malformed pagination or price-range input. Never
	// silently coerced.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStoreUnavailable - the backing store could not be reached. The core
	// performs no retry; the caller owns retry policy.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeError wraps a driver/query failure so callers can match it with
// errors.Is(err, ErrStoreUnavailable) while keeping the original cause.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
