package app

import (
	"context"
	"time"

	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/domain/repository"
	"github.com/spinzone/backend/internal/usecase"
)

// CommerceFacade aggregates the application's use cases behind the surface
// consumed by HTTP handlers and the background sweeper.
type CommerceFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	checkout *usecase.CheckoutUseCase
	pending  repository.PendingTransactionRepository
}

func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	checkout *usecase.CheckoutUseCase,
	pending repository.PendingTransactionRepository,
) *CommerceFacade {
	return &CommerceFacade{auth: auth, catalog: catalog, checkout: checkout, pending: pending}
}

func (f *CommerceFacade) Register(ctx context.Context, email, name, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, name, password)
	return token, err
}

func (f *CommerceFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *CommerceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *CommerceFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetByID(ctx, id)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, p)
}

func (f *CommerceFacade) UpdateProduct(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, id, p)
}

func (f *CommerceFacade) PatchProduct(ctx context.Context, id int64, fields map[string]any) (*model.Product, error) {
	return f.catalog.PartialUpdate(ctx, id, fields)
}

func (f *CommerceFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

func (f *CommerceFacade) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	return f.catalog.Search(ctx, term)
}

func (f *CommerceFacade) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return f.catalog.ListByCategory(ctx, categoryID)
}

func (f *CommerceFacade) InitiatePayment(ctx context.Context, params usecase.InitiateParams) (*model.PaymentRedirect, error) {
	return f.checkout.Initiate(ctx, params)
}

func (f *CommerceFacade) ConfirmPayment(ctx context.Context, token string) (*model.ConfirmResult, error) {
	return f.checkout.Confirm(ctx, token)
}

func (f *CommerceFacade) PaymentAborted(ctx context.Context, token, orderCode, sessionID string) (*usecase.CancellationNotice, error) {
	return f.checkout.HandleAbort(ctx, token, orderCode, sessionID)
}

func (f *CommerceFacade) PaymentTimeout(ctx context.Context, sessionID, orderCode string) (*usecase.CancellationNotice, error) {
	return f.checkout.HandleTimeout(ctx, sessionID, orderCode)
}

// SweepPendingTransactions removes staged transactions abandoned before the
// cutoff. Used by the background sweeper.
func (f *CommerceFacade) SweepPendingTransactions(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.pending.DeleteExpired(ctx, cutoff)
}
