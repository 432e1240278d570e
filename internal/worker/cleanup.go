package worker

import (
	"context"
	"log/slog"
)

// KeyPurger deletes idempotency keys past their TTL.
type KeyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type IdempotencyCleaner struct {
	purger KeyPurger
}

func NewIdempotencyCleaner(purger KeyPurger) *IdempotencyCleaner {
	return &IdempotencyCleaner{purger: purger}
}

func (c *IdempotencyCleaner) RunOnce(ctx context.Context) (int64, error) {
	n, err := c.purger.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("expired idempotency keys purged", "count", n)
	}
	return n, nil
}
