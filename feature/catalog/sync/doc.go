// Package sync orchestrates catalog sync cycles.
//
// A cycle runs every reconciler in order (primary feed, then secondary feed).
// Each pass commits on its own, so a failing feed never discards the other
// one's data. A pass ends in one of three outcomes:
//
//   - committed: the transaction committed; commit hooks run (read cache
//     invalidation).
//   - skipped: the feed could not be fetched or decoded; nothing was written.
//   - rolled_back: writing failed (missing item id, constraint violation or
//     panic); the pass's transaction was discarded.
//
// The Syncer is either idle or running. The state is an atomic flag taken by
// compare-and-swap, so concurrent triggers (startup, scheduler ticks, POST
// /sync) never overlap: a trigger arriving mid-cycle is dropped with
// ErrCycleInFlight. The flag is released whatever the cycle's result.
package sync
