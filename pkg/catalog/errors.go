package catalog

import (
	"errors"
	"fmt"
)

// ErrSeedFetch marks a failed seed call: the listing, or the detail call of
// a lookup by id. The page is reported empty.
var ErrSeedFetch = errors.New("seed fetch failed")

// SeedFetchError describes a failed seed call.
type SeedFetchError struct {
	Dimension Dimension
	Value     string
	Err       error
}

// Error implements the error interface.
func (e *SeedFetchError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("seed fetch failed for dimension %s: %v", e.Dimension, e.Err)
	}
	return fmt.Sprintf("seed fetch failed for dimension %s %q: %v", e.Dimension, e.Value, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SeedFetchError) Unwrap() error {
	return e.Err
}

// Is matches ErrSeedFetch.
func (e *SeedFetchError) Is(target error) bool {
	return target == ErrSeedFetch
}
