// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures PostgreSQL (default), MySQL or SQLite connections
// based on the application's configuration. The handle returned by Connect is
// created once at startup and injected into every component that needs the
// store; there is no package-level connection.
//
// # Connect
//
// Connect opens the dialector for the configured driver, enables GORM error
// translation (so unique and foreign-key violations surface as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated), sizes the pool and
// pings the server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table for each supported dialect.
// The catalog feature uses it to verify the migrated schema at startup.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "categories")
package database
