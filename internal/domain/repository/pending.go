package repository

import (
	"context"
	"time"

	"github.com/spinzone/backend/internal/domain/model"
)

// PendingTransactionRepository is the staging ledger of in-flight payments.
type PendingTransactionRepository interface {
	Put(ctx context.Context, tx model.PendingTransaction) error
	GetByBuyOrder(ctx context.Context, buyOrder string) (*model.PendingTransaction, error)
	Delete(ctx context.Context, buyOrder string) error
	// DeleteExpired removes entries staged before the cutoff and reports how
	// many rows were swept.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
