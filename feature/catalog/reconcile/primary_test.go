package reconcile_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"catalog-sync/core/feed"
	"catalog-sync/core/reconcile"
	"catalog-sync/feature/catalog/models"
	catalogreconcile "catalog-sync/feature/catalog/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const primaryFeed = `{
  "categories": [
    {"Category_ID": 1, "Category_Name": "Shoes", "Category_Image": "shoes.png", "sort_order": 2},
    {"Category_ID": "2", "Category_Name": "Hats", "Category_Image": null, "sort_order": 1}
  ],
  "product_marks": [{"Mark_ID": 7, "Mark_Name": "new"}],
  "special_project_parameters_actions": [
    {"id": 3, "action_type": "banner", "description": "Spring sale", "extra_field_1": "a", "extra_field_2": "b", "image_url": "sale.png", "sort_order": 1, "url": null}
  ],
  "special_project_parameters_badges": [
    {"id": 4, "description": "Hit", "image_url": "hit.png", "meaning_tag": "hit", "sort_order": 1, "url": "/hit"}
  ],
  "special_project_parameters": {"currency": "RUB", "min_order": 500, "flags": {"a": [1, 2]}, "empty": null},
  "special_project_parameters_json": {
    "delivery_method": {"methods_list": [
      {"type": "pickup", "name": "Pickup", "description": "From store", "addr_points": [
        {"address": "Main st 1", "name": "Store 1"},
        {"address": "Main st 1", "name": "Store 1"},
        {"address": "Side st 2", "name": "Store 2"}
      ]},
      {"type": "courier", "name": "Courier", "description": "To the door", "addr_points": []}
    ]},
    "fast_search_strings": {"parameters_list": ["boots", "sneakers", "boots"]},
    "global_reviews": {"rating": 4.8},
    "is_side_menu": true
  },
  "status": "ok"
}`

func runPrimary(t *testing.T, p *catalogreconcile.Primary) reconcile.Stats {
	t.Helper()
	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	return stats
}

func TestPrimaryApplies(t *testing.T) {
	db := newDB(t)
	p := catalogreconcile.NewPrimary(db, &staticFetcher{bodies: map[string]string{"primary": primaryFeed}}, "", zap.NewNop())

	stats := runPrimary(t, p)
	assert.Equal(t, 2, stats["categories"].Created)

	assert.Equal(t, int64(2), count(t, db, &models.Category{}))
	assert.Equal(t, int64(1), count(t, db, &models.ProductMark{}))
	assert.Equal(t, int64(1), count(t, db, &models.PromotionalAction{}))
	assert.Equal(t, int64(1), count(t, db, &models.PromotionalBadge{}))
	assert.Equal(t, int64(4), count(t, db, &models.GlobalParameter{}))
	assert.Equal(t, int64(2), count(t, db, &models.DeliveryMethod{}))
	assert.Equal(t, int64(2), count(t, db, &models.DeliveryAddress{}))
	assert.Equal(t, int64(2), count(t, db, &models.FastSearchTerm{}))
	assert.Equal(t, int64(3), count(t, db, &models.MiscFlag{}))

	var hats models.Category
	require.NoError(t, db.First(&hats, "category_id = ?", 2).Error)
	assert.Equal(t, "Hats", hats.CategoryName)
	assert.Nil(t, hats.CategoryImage)

	params := map[string]*string{}
	var rows []models.GlobalParameter
	require.NoError(t, db.Find(&rows).Error)
	for _, r := range rows {
		params[r.Key] = r.Value
	}
	require.NotNil(t, params["currency"])
	assert.Equal(t, "RUB", *params["currency"])
	assert.Equal(t, "500", *params["min_order"])
	assert.Equal(t, `{"a":[1,2]}`, *params["flags"])
	assert.Nil(t, params["empty"])

	var status models.MiscFlag
	require.NoError(t, db.First(&status, "name = ?", models.FlagStatus).Error)
	assert.JSONEq(t, `"ok"`, string(status.Value))
}

func TestPrimaryUpsertByKey(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Create(&models.Category{CategoryID: 5, CategoryName: "A"}).Error)

	body := `{"categories":[{"Category_ID":5,"Category_Name":"B","sort_order":1}],"status":"ok"}`
	p := catalogreconcile.NewPrimary(db, &staticFetcher{bodies: map[string]string{"primary": body}}, "", zap.NewNop())
	stats := runPrimary(t, p)

	assert.Equal(t, 1, stats["categories"].Updated)
	var rows []models.Category
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].CategoryID)
	assert.Equal(t, "B", rows[0].CategoryName)
}

func TestPrimaryIdempotent(t *testing.T) {
	db := newDB(t)
	p := catalogreconcile.NewPrimary(db, &staticFetcher{bodies: map[string]string{"primary": primaryFeed}}, "", zap.NewNop())

	runPrimary(t, p)
	stats := runPrimary(t, p)

	assert.Zero(t, stats.Total().Created)
	assert.Equal(t, int64(2), count(t, db, &models.Category{}))
	assert.Equal(t, int64(2), count(t, db, &models.DeliveryAddress{}))
	assert.Equal(t, int64(2), count(t, db, &models.FastSearchTerm{}))
	assert.Equal(t, int64(3), count(t, db, &models.MiscFlag{}))
}

func TestPrimaryAddressDeduplication(t *testing.T) {
	db := newDB(t)
	first := `{"special_project_parameters_json":{"delivery_method":{"methods_list":[
		{"type":"pickup","name":"Pickup","addr_points":[{"address":"Main st 1","name":"Store 1"}]}]}}}`
	second := `{"special_project_parameters_json":{"delivery_method":{"methods_list":[
		{"type":"pickup","name":"Pickup","addr_points":[{"address":"Main st 1","name":"Store 1"},{"address":"Main st 9","name":"Store 9"}]}]}}}`

	f := &staticFetcher{bodies: map[string]string{"primary": first}}
	p := catalogreconcile.NewPrimary(db, f, "", zap.NewNop())
	runPrimary(t, p)

	f.bodies["primary"] = second
	stats := runPrimary(t, p)

	assert.Equal(t, 1, stats["delivery_addresses"].Created)
	assert.Equal(t, 1, stats["delivery_addresses"].Skipped)
	assert.Equal(t, int64(2), count(t, db, &models.DeliveryAddress{}))
}

func TestPrimaryAddressesScopedToMethod(t *testing.T) {
	db := newDB(t)
	body := `{"special_project_parameters_json":{"delivery_method":{"methods_list":[
		{"type":"pickup","addr_points":[{"address":"Main st 1","name":"Store 1"}]},
		{"type":"locker","addr_points":[{"address":"Main st 1","name":"Store 1"}]}]}}}`

	p := catalogreconcile.NewPrimary(db, &staticFetcher{bodies: map[string]string{"primary": body}}, "", zap.NewNop())
	runPrimary(t, p)

	assert.Equal(t, int64(2), count(t, db, &models.DeliveryAddress{}))
}

func TestPrimaryFastSearchUnion(t *testing.T) {
	db := newDB(t)
	f := &staticFetcher{bodies: map[string]string{
		"primary": `{"special_project_parameters_json":{"fast_search_strings":{"parameters_list":["a","b","a"]}}}`,
	}}
	p := catalogreconcile.NewPrimary(db, f, "", zap.NewNop())
	runPrimary(t, p)

	f.bodies["primary"] = `{"special_project_parameters_json":{"fast_search_strings":{"parameters_list":["c"]}}}`
	runPrimary(t, p)

	var values []string
	require.NoError(t, db.Model(&models.FastSearchTerm{}).Order("value").Pluck("value", &values).Error)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestPrimaryMiscFlags(t *testing.T) {
	db := newDB(t)
	f := &staticFetcher{bodies: map[string]string{"primary": `{"special_project_parameters_json":{"global_reviews":{}},"status":"ok"}`}}
	p := catalogreconcile.NewPrimary(db, f, "", zap.NewNop())
	runPrimary(t, p)

	var names []string
	require.NoError(t, db.Model(&models.MiscFlag{}).Order("name").Pluck("name", &names).Error)
	assert.Equal(t, []string{"is_side_menu", "status"}, names)

	var side models.MiscFlag
	require.NoError(t, db.First(&side, "name = ?", models.FlagIsSideMenu).Error)
	// SQL NULL loads as an empty value.
	assert.Empty(t, side.Value)
	var raw sql.NullString
	require.NoError(t, db.Raw("SELECT value FROM additional_info WHERE name = ?", models.FlagIsSideMenu).Row().Scan(&raw))
	assert.False(t, raw.Valid)

	f.bodies["primary"] = `{"special_project_parameters_json":{"is_side_menu":false},"status":"maintenance"}`
	runPrimary(t, p)

	assert.Equal(t, int64(2), count(t, db, &models.MiscFlag{}))
	var status models.MiscFlag
	require.NoError(t, db.First(&status, "name = ?", models.FlagStatus).Error)
	assert.JSONEq(t, `"maintenance"`, string(status.Value))
}

func TestPrimaryMissingIDRollsBack(t *testing.T) {
	db := newDB(t)
	body := `{"categories":[{"Category_ID":1,"Category_Name":"Shoes"}],"product_marks":[{"Mark_Name":"no id"}]}`
	p := catalogreconcile.NewPrimary(db, &staticFetcher{bodies: map[string]string{"primary": body}}, "", zap.NewNop())

	_, err := p.Run(context.Background())
	var pe *reconcile.PartialItemError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "product_marks", pe.Entity)
	assert.Equal(t, 0, pe.Index)
	assert.Equal(t, "Mark_ID", pe.Field)

	assert.Zero(t, count(t, db, &models.Category{}))
}

func TestPrimaryFetchFailureWritesNothing(t *testing.T) {
	db := newDB(t)
	fetchErr := &feed.FetchError{Feed: "primary", URL: "http://upstream", StatusCode: 503}
	p := catalogreconcile.NewPrimary(db, &staticFetcher{errs: map[string]error{"primary": fetchErr}}, "", zap.NewNop())

	stats, err := p.Run(context.Background())
	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, fetchErr))
	assert.Zero(t, count(t, db, &models.MiscFlag{}))
}

func TestPrimaryDecodeFailureWritesNothing(t *testing.T) {
	db := newDB(t)
	p := catalogreconcile.NewPrimary(db, &staticFetcher{bodies: map[string]string{"primary": `[1,2,3]`}}, "", zap.NewNop())

	_, err := p.Run(context.Background())
	var de *feed.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Zero(t, count(t, db, &models.MiscFlag{}))
}
