// Package reconcile provides the generic write primitives used to merge feed
// payloads into the relational store.
//
// The reconcile system is designed around three rules:
//   - Every entity is matched by a stable key; a second sighting updates the
//     stored row in place and never creates a duplicate.
//   - Nothing is deleted: absence from a feed is not a deletion signal.
//   - A pass is all-or-nothing: its writes are staged in one transaction and
//     committed once.
//
// # Primitives
//
// Upsert[T] is the keyed insert-or-update over one entity kind. It never
// rewrites the key column. InsertIfAbsent[T] stages key-only rows (join pairs,
// set members, child rows without their own identity) only when no matching row
// exists. Find[T] loads a row by key, e.g. to learn a surrogate id.
//
// # Passes
//
// Apply opens the transaction, hands the caller a *Tx, commits on success and
// rolls back on error or panic. It returns per-table Stats of what was created,
// updated or skipped.
//
// # Errors
//
// Store-level uniqueness and foreign-key violations surface as
// *ConstraintError; feed items lacking a required field are reported by callers
// as *PartialItemError. Both abort the pass.
//
// # Usage Example
//
//	stats, err := reconcile.Apply(ctx, db, func(tx *reconcile.Tx) error {
//	    _, err := reconcile.Upsert[models.Category](tx, "category_id", 5, reconcile.Fields{
//	        "category_name": "Shoes",
//	    })
//	    return err
//	})
package reconcile
