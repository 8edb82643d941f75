// Package config assembles the application configuration.
//
// Each concern owns its Config struct (server, database, log, feed, storage,
// sync) with `mapstructure` keys and `default` tags. LoadConfig registers the
// defaults through reflection, loads an optional .env file with godotenv and
// lets environment variables override any key:
//
//	SERVER_PORT=8080
//	DATABASE_DRIVER=sqlite DATABASE_NAME=catalog.db
//	FEED_TIMEOUT_SECONDS=10
//	SYNC_INTERVAL_SECONDS=300
package config
