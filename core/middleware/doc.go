// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - rayid: tags every request with a ray id (X-Ray-ID) for log correlation.
//
// Request logging and metrics middleware live in cmd/start and core/metrics.
package middleware
