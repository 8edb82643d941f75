package reconcile

import (
	"context"

	"catalog-sync/core/reconcile"
)

// Fetcher retrieves one feed document into out.
type Fetcher interface {
	Fetch(ctx context.Context, name, url string, out any) error
}

// Reconciler fetches one feed and merges it into the store in one transaction.
type Reconciler interface {
	Name() string
	Run(ctx context.Context) (reconcile.Stats, error)
}
