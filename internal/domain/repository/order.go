package repository

import (
	"context"

	"github.com/spinzone/backend/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order together with its lines in one transaction,
	// keyed by the unique buy order. When a row for the same buy order already
	// exists the existing order is returned and created is false.
	Create(ctx context.Context, order model.Order) (*model.Order, bool, error)
	GetByBuyOrder(ctx context.Context, buyOrder string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}
