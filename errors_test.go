package compendium

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryNotFoundError(t *testing.T) {
	err := &EntryNotFoundError{Entry: "octorok"}
	assert.Equal(t, `compendium: no entry "octorok"`, err.Error())
	assert.True(t, IsEntryNotFound(err))
	assert.True(t, IsEntryNotFound(fmt.Errorf("lookup: %w", err)))
	assert.False(t, IsUnknownCategory(err))
}

func TestUnknownCategoryError(t *testing.T) {
	err := &UnknownCategoryError{Category: "weapons"}
	assert.Equal(t, `compendium: unknown category "weapons"`, err.Error())
	assert.True(t, IsUnknownCategory(err))
	assert.True(t, IsUnknownCategory(fmt.Errorf("lookup: %w", err)))
	assert.False(t, IsEntryNotFound(err))
}

func TestPredicatesOnUnrelatedErrors(t *testing.T) {
	err := errors.New("connection refused")
	assert.False(t, IsEntryNotFound(err))
	assert.False(t, IsUnknownCategory(err))
	assert.False(t, IsEntryNotFound(nil))
	assert.False(t, IsUnknownCategory(nil))
}
