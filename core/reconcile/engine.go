package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Apply runs one reconciliation pass inside a single database transaction.
//
// Every write fn makes through tx is committed once when fn returns nil. An
// error or a panic from fn rolls the whole pass back, leaving previously
// committed data untouched. The returned Stats are only meaningful on success.
func Apply(ctx context.Context, db *gorm.DB, fn func(tx *Tx) error) (stats Stats, err error) {
	stats = make(Stats)

	defer func() {
		if r := recover(); r != nil {
			stats = nil
			err = fmt.Errorf("reconcile pass panicked: %v", r)
		}
	}()

	err = db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&Tx{db: gtx, stats: stats})
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
