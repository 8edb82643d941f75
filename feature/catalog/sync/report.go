package sync

import (
	"time"

	"catalog-sync/core/reconcile"
)

// Pass outcomes.
const (
	// OutcomeCommitted means the pass's transaction committed.
	OutcomeCommitted = "committed"
	// OutcomeSkipped means the feed could not be fetched or decoded; nothing was written.
	OutcomeSkipped = "skipped"
	// OutcomeRolledBack means the pass failed while writing and was discarded.
	OutcomeRolledBack = "rolled_back"
)

// PassReport describes one reconciler pass of a cycle.
type PassReport struct {
	Reconciler string          `json:"reconciler"`
	Outcome    string          `json:"outcome"`
	Error      string          `json:"error,omitempty"`
	Stats      reconcile.Stats `json:"stats,omitempty"`
	Duration   time.Duration   `json:"duration_ns" swaggertype:"integer"`
}

// CycleReport describes one finished sync cycle.
type CycleReport struct {
	ID         string       `json:"id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Passes     []PassReport `json:"passes"`
}

// OK reports whether every pass committed.
func (r *CycleReport) OK() bool {
	for _, p := range r.Passes {
		if p.Outcome != OutcomeCommitted {
			return false
		}
	}
	return true
}

// Status is the orchestrator state exposed over HTTP.
type Status struct {
	Running bool         `json:"running"`
	Last    *CycleReport `json:"last,omitempty"`
}
