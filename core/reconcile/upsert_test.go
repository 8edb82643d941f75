package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/database"
	"catalog-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	Code string `gorm:"primaryKey"`
	Name string
	Size int
}

type label struct {
	ID    uint   `gorm:"primaryKey"`
	Value string `gorm:"uniqueIndex"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}, &label{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestUpsert_CreateThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stats, err := reconcile.Apply(ctx, db, func(tx *reconcile.Tx) error {
		out, err := reconcile.Upsert[widget](tx, "code", "w-5", reconcile.Fields{"name": "A", "size": 1})
		assert.Equal(t, reconcile.OutcomeCreated, out)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats["widgets"].Created)

	stats, err = reconcile.Apply(ctx, db, func(tx *reconcile.Tx) error {
		out, err := reconcile.Upsert[widget](tx, "code", "w-5", reconcile.Fields{"name": "B", "size": 2})
		assert.Equal(t, reconcile.OutcomeUpdated, out)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats["widgets"].Updated)

	var rows []widget
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, widget{Code: "w-5", Name: "B", Size: 2}, rows[0])
}

func TestUpsert_NeverRewritesKey(t *testing.T) {
	db := setupTestDB(t)

	_, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		if _, err := reconcile.Upsert[widget](tx, "code", "w-1", reconcile.Fields{"name": "A"}); err != nil {
			return err
		}
		// A stray key column in the field map is ignored on update.
		_, err := reconcile.Upsert[widget](tx, "code", "w-1", reconcile.Fields{"code": "w-2", "name": "C"})
		return err
	})
	require.NoError(t, err)

	var rows []widget
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "w-1", rows[0].Code)
	assert.Equal(t, "C", rows[0].Name)
}

func TestUpsert_IdempotentWithinPass(t *testing.T) {
	db := setupTestDB(t)
	fields := reconcile.Fields{"name": "Same", "size": 7}

	stats, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		for i := 0; i < 2; i++ {
			if _, err := reconcile.Upsert[widget](tx, "code", "dup", fields); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Counts{Created: 1, Updated: 1}, *stats["widgets"])

	var count int64
	db.Model(&widget{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsert_NilKey(t *testing.T) {
	db := setupTestDB(t)

	_, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		_, err := reconcile.Upsert[widget](tx, "code", nil, reconcile.Fields{"name": "x"})
		return err
	})
	var partial *reconcile.PartialItemError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "code", partial.Field)
}

func TestInsertIfAbsent(t *testing.T) {
	db := setupTestDB(t)

	stats, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		for _, v := range []string{"red", "blue", "red"} {
			if _, err := reconcile.InsertIfAbsent[label](tx, reconcile.Fields{"value": v}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Counts{Created: 2, Skipped: 1}, *stats["labels"])
	assert.Equal(t, reconcile.Counts{Created: 2, Skipped: 1}, stats.Total())

	var count int64
	db.Model(&label{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestFind(t *testing.T) {
	db := setupTestDB(t)

	_, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		if _, err := reconcile.InsertIfAbsent[label](tx, reconcile.Fields{"value": "green"}); err != nil {
			return err
		}
		row, err := reconcile.Find[label](tx, "value", "green")
		if err != nil {
			return err
		}
		assert.NotZero(t, row.ID)

		_, err = reconcile.Find[label](tx, "value", "missing")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestApply_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	boom := errors.New("malformed item")

	stats, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		if _, err := reconcile.Upsert[widget](tx, "code", "w-9", reconcile.Fields{"name": "staged"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, stats)

	var count int64
	db.Model(&widget{}).Count(&count)
	assert.Zero(t, count)
}

func TestApply_RecoversPanic(t *testing.T) {
	db := setupTestDB(t)

	_, err := reconcile.Apply(context.Background(), db, func(tx *reconcile.Tx) error {
		if _, err := reconcile.Upsert[widget](tx, "code", "w-3", reconcile.Fields{"name": "staged"}); err != nil {
			return err
		}
		panic("nil map")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	var count int64
	db.Model(&widget{}).Count(&count)
	assert.Zero(t, count)
}

func TestFields(t *testing.T) {
	f := reconcile.Fields{"a": 1, "b": 2}

	assert.Equal(t, reconcile.Fields{"b": 2}, f.Without("a"))
	assert.Equal(t, reconcile.Fields{"a": 1, "b": 2, "c": 3}, f.With("c", 3))
	// Originals are untouched
	assert.Len(t, f, 2)
}
