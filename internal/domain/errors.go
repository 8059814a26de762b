package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrDatasetUnreadable is returned when an uploaded dataset cannot be parsed
	ErrDatasetUnreadable = errors.New("dataset could not be read: column separator must be a comma (,) or semicolon (;)")

	// ErrEmptyCatalog is returned when no usable product rows survive normalization
	ErrEmptyCatalog = errors.New("catalog contains no usable products")

	// ErrSnapshotNotBuilt is returned when the recommendation index has not been built yet
	ErrSnapshotNotBuilt = errors.New("recommendation index not built")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
