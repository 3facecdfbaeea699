package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/domain/repository"
)

// CatalogUseCase encapsulates product catalog management.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns all catalog entries.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// GetByID returns a single product.
func (u *CatalogUseCase) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create validates and stores a new product.
func (u *CatalogUseCase) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, domainErrors.ErrMissingField
	}
	if p.Price < 0 || p.Stock < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Create(ctx, p)
}

// Update replaces all product fields.
func (u *CatalogUseCase) Update(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, domainErrors.ErrMissingField
	}
	if p.Price < 0 || p.Stock < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Update(ctx, id, p)
}

// PartialUpdate changes only the provided fields.
func (u *CatalogUseCase) PartialUpdate(ctx context.Context, id int64, fields map[string]any) (*model.Product, error) {
	return u.products.PartialUpdate(ctx, id, fields)
}

// Delete removes a product.
func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// Search finds products by name or description.
func (u *CatalogUseCase) Search(ctx context.Context, term string) ([]model.Product, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domainErrors.ErrMissingField
	}
	return u.products.Search(ctx, term)
}

// ListByCategory returns products belonging to the category.
func (u *CatalogUseCase) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return u.products.ListByCategory(ctx, categoryID)
}
