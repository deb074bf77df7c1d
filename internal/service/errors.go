package service

import "errors"

var (
	// ErrInvalidWeight rejects non-positive consumption weights before any
	// storage access.
	ErrInvalidWeight = errors.New("product weight must be positive")

	// ErrProductNotFound means the product id does not resolve in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrDiaryNotFound means the user has no diary yet.
	ErrDiaryNotFound = errors.New("diary not found")

	// ErrEntryNotFound means the diary holds no entry with the requested
	// identity inside the requested day. Removal is deliberately not
	// idempotent: a repeated call fails with this error.
	ErrEntryNotFound = errors.New("diary entry not found")

	// ErrNoEntriesForDate distinguishes "nothing logged that day" from a
	// zero-calorie summary.
	ErrNoEntriesForDate = errors.New("no diary entries found for this date")
)
