package compactstr

import "github.com/foldwire/compactstr/internal/repr"

// Error types are aliased from internal/repr so callers can use
// errors.As(err, &compactstr.BoundaryError{}) without importing the
// internal package themselves.
type (
	ReserveError     = repr.ReserveError
	Utf8Error        = repr.Utf8Error
	Utf16Error       = repr.Utf16Error
	BoundaryError    = repr.BoundaryError
	CapacityOverflow = repr.CapacityOverflow
)
