// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port and the TTL of the read API snapshot cache.
package server
