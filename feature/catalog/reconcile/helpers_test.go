package reconcile_test

import (
	"context"
	"encoding/json"
	"testing"

	"catalog-sync/core/database"
	"catalog-sync/core/feed"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Foreign keys are enforced so orphan links fail the way they do on postgres.
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:?_foreign_keys=on"})
	require.NoError(t, err)
	require.NoError(t, catalog.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// staticFetcher serves canned bodies per feed name.
type staticFetcher struct {
	bodies map[string]string
	errs   map[string]error
}

func (f *staticFetcher) Fetch(_ context.Context, name, _ string, out any) error {
	if err := f.errs[name]; err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(f.bodies[name]), out); err != nil {
		return &feed.DecodeError{Feed: name, Err: err}
	}
	return nil
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// seedCategories stores categories a product feed may link to.
func seedCategories(t *testing.T, db *gorm.DB, ids ...int) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, db.Create(&models.Category{CategoryID: id, CategoryName: "seed"}).Error)
	}
}
