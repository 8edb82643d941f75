// Package metrics exposes Prometheus instrumentation for the service.
//
// Collectors are registered on the default registry at init. HTTP traffic is
// measured by Middleware, the feed client and the sync orchestrator call the
// Observe helpers, and Handler serves everything on /metrics.
package metrics
