package repository

import (
	"context"

	"github.com/spinzone/backend/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog entries.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, id int64, p model.Product) (*model.Product, error)
	PartialUpdate(ctx context.Context, id int64, fields map[string]any) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	// DecrementStock subtracts quantity from stock in a single conditional
	// update, clamped at zero. Never drives stock negative.
	DecrementStock(ctx context.Context, id int64, quantity int) error
}
