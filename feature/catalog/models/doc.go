// Package models defines the GORM models of the catalog store.
//
// Entities with an upstream identity (categories, marks, actions, badges,
// products, images, parameters) use that id as primary key. The rest get a
// surrogate id plus a unique business key (parameter key, delivery method
// type, search term value, flag name, the delivery address triple and the
// product/category pair).
//
// Rows are created on first sighting and updated in place afterwards; nothing
// here is ever deleted by a sync.
package models
