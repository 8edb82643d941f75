package reconcile

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tx is the staging area of one reconciliation pass. Writes made through it
// become visible to later lookups in the same pass and are committed together
// by Apply.
type Tx struct {
	db    *gorm.DB
	stats Stats
}

// DB exposes the underlying transaction for read-only lookups.
func (tx *Tx) DB() *gorm.DB {
	return tx.db
}

// Upsert inserts or updates one row of T identified by the unique column key.
//
// When exactly one row has key = value, every column in fields except key is
// overwritten. When none does, a row is created from fields plus the key.
// More than one match is reported as a ConstraintError wrapping ErrAmbiguousKey.
// Nothing is committed here.
func Upsert[T any](tx *Tx, key string, value any, fields Fields) (Outcome, error) {
	entity := tableOf[T](tx.db)
	if value == nil {
		return "", &PartialItemError{Entity: entity, Index: -1, Field: key}
	}

	where := clause.Eq{Column: clause.Column{Name: key}, Value: value}

	var n int64
	if err := tx.db.Model(new(T)).Where(where).Count(&n).Error; err != nil {
		return "", classify(entity, err)
	}

	switch {
	case n > 1:
		return "", &ConstraintError{Entity: entity, Err: fmt.Errorf("%s=%v: %w", key, value, ErrAmbiguousKey)}
	case n == 1:
		updates := fields.Without(key)
		if len(updates) > 0 {
			if err := tx.db.Model(new(T)).Where(where).Updates(map[string]any(updates)).Error; err != nil {
				return "", classify(entity, err)
			}
		}
		tx.stats.record(entity, OutcomeUpdated)
		return OutcomeUpdated, nil
	}

	if err := tx.db.Model(new(T)).Create(map[string]any(fields.With(key, value))).Error; err != nil {
		return "", classify(entity, err)
	}
	tx.stats.record(entity, OutcomeCreated)
	return OutcomeCreated, nil
}

// InsertIfAbsent creates a row of T from match unless a row with all of the
// match columns already exists. Rows written this way are never updated.
func InsertIfAbsent[T any](tx *Tx, match Fields) (Outcome, error) {
	entity := tableOf[T](tx.db)

	var n int64
	if err := tx.db.Model(new(T)).Where(map[string]any(match)).Count(&n).Error; err != nil {
		return "", classify(entity, err)
	}
	if n > 0 {
		tx.stats.record(entity, OutcomeSkipped)
		return OutcomeSkipped, nil
	}

	if err := tx.db.Model(new(T)).Create(map[string]any(match)).Error; err != nil {
		return "", classify(entity, err)
	}
	tx.stats.record(entity, OutcomeCreated)
	return OutcomeCreated, nil
}

// Find loads the row of T whose key column equals value.
func Find[T any](tx *Tx, key string, value any) (*T, error) {
	var row T
	err := tx.db.Where(clause.Eq{Column: clause.Column{Name: key}, Value: value}).Take(&row).Error
	if err != nil {
		return nil, classify(tableOf[T](tx.db), err)
	}
	return &row, nil
}

// tableOf resolves the table name GORM uses for T.
func tableOf[T any](db *gorm.DB) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil || stmt.Schema == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return stmt.Schema.Table
}
