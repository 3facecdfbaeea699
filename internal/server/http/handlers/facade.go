package handlers

import (
	"context"

	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade encapsulates product catalog operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, p model.Product) (*model.Product, error)
	PatchProduct(ctx context.Context, id int64, fields map[string]any) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
}

// PaymentFacade provides payment orchestration operations.
type PaymentFacade interface {
	InitiatePayment(ctx context.Context, params usecase.InitiateParams) (*model.PaymentRedirect, error)
	ConfirmPayment(ctx context.Context, token string) (*model.ConfirmResult, error)
	PaymentAborted(ctx context.Context, token, orderCode, sessionID string) (*usecase.CancellationNotice, error)
	PaymentTimeout(ctx context.Context, sessionID, orderCode string) (*usecase.CancellationNotice, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	CatalogFacade
	PaymentFacade
}
