package domain

import (
	"fmt"
)

// ValidationError reports a missing or invalid request field, or an
// upload that violates a size or type constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// MalformedInputError reports a JSON-encoded sub-field that could not be parsed.
type MalformedInputError struct {
	Field string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: malformed JSON array: %v", e.Field, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// StorageError wraps a database or filesystem failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IngredientLinkError is returned when an association row could not be
// written. The transaction is rolled back: with RecipeDiscarded set, RecipeID
// names the new recipe row that was thrown away; otherwise it is an existing
// recipe whose links were left unchanged.
type IngredientLinkError struct {
	RecipeID        uint
	IngredientID    uint
	RecipeDiscarded bool
	Err             error
}

func (e *IngredientLinkError) Error() string {
	return fmt.Sprintf("link ingredient %d to recipe %d: %v", e.IngredientID, e.RecipeID, e.Err)
}

func (e *IngredientLinkError) Unwrap() error { return e.Err }
