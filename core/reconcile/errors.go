package reconcile

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrAmbiguousKey is wrapped by a ConstraintError when a key that should be
// unique matches more than one stored row.
var ErrAmbiguousKey = errors.New("key matches more than one row")

// ConstraintError reports a write that violates a uniqueness or
// referential-integrity rule of the store.
type ConstraintError struct {
	Entity string
	Err    error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: constraint violation: %v", e.Entity, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// PartialItemError reports a feed item that lacks a field required to
// reconcile it.
type PartialItemError struct {
	Entity string
	Index  int
	Field  string
}

func (e *PartialItemError) Error() string {
	return fmt.Sprintf("%s[%d]: missing required field %q", e.Entity, e.Index, e.Field)
}

// Missing builds a PartialItemError for item index of entity.
func Missing(entity string, index int, field string) error {
	return &PartialItemError{Entity: entity, Index: index, Field: field}
}

// classify wraps store errors, promoting constraint violations to ConstraintError.
func classify(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Entity: entity, Err: err}
	}
	return fmt.Errorf("%s: %w", entity, err)
}
