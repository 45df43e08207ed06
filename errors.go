package compendium

import (
	"errors"
	"fmt"
)

// ErrMasterModeDisabled is returned when ModeMaster is requested on a
// client constructed without master mode enabled.
var ErrMasterModeDisabled = errors.New("master mode is not enabled on this client")

// EntryNotFoundError indicates an entry was absent from every queried
// endpoint.
type EntryNotFoundError struct {
	// Entry is the requested entry name or ID.
	Entry string
}

// Error implements the error interface.
func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("compendium: no entry %q", e.Entry)
}

// UnknownCategoryError indicates a category name outside the fixed
// compendium set.
type UnknownCategoryError struct {
	// Category is the invalid category name.
	Category string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("compendium: unknown category %q", e.Category)
}

// IsEntryNotFound checks if the error indicates a missing entry.
func IsEntryNotFound(err error) bool {
	var notFound *EntryNotFoundError
	return errors.As(err, &notFound)
}

// IsUnknownCategory checks if the error indicates an invalid category name.
func IsUnknownCategory(err error) bool {
	var unknown *UnknownCategoryError
	return errors.As(err, &unknown)
}
