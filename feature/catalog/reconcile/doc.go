// Package reconcile merges the two upstream catalog feeds into the store.
//
// Primary handles the "on_main" document (categories, marks, promotional
// actions and badges, global parameters, delivery methods with their address
// points, fast-search terms and three misc flags). Secondary handles the full
// product list with nested category links, images and parameters.
//
// Each Run fetches its feed first and writes nothing when the fetch or decode
// fails. The document is then applied through core/reconcile in a single
// transaction: an item missing its id, or a constraint violation, rolls the
// whole pass back.
//
// Rows are matched by their upstream id (or business key) and updated in
// place. Delivery addresses, search terms and product/category links are
// insert-if-absent. Rows missing from a feed are kept.
package reconcile
