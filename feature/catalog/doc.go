// Package catalog is the read side of the catalog store.
//
// It owns the schema bootstrap (Migrate, VerifySchema) and serves:
//
//   - GET /overview: row counts per entity as text/plain, one "Label: n" line
//     each, in a fixed order.
//   - GET /info: every table as typed JSON rows.
//   - GET /schema: model columns missing from the live tables.
//
// Results are cached in memory for server.cache_ttl_seconds. The sync
// orchestrator calls Service.Invalidate after each committed pass, so a
// reader never sees a snapshot older than the last commit once the call
// returns. Reads never wait for a running sync cycle.
package catalog
