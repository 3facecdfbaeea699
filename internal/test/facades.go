package test

import (
	"context"
	"sync"
	"time"

	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, error)
}

// Register delegates to configured function or returns a fixed token.
func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password)
	}
	return "token", nil
}

// Authenticate delegates to configured function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken delegates to configured function or resolves user 1.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
	CreateFn   func(context.Context, model.Product) (*model.Product, error)
	UpdateFn   func(context.Context, int64, model.Product) (*model.Product, error)
	PatchFn    func(context.Context, int64, map[string]any) (*model.Product, error)
	DeleteFn   func(context.Context, int64) error
	SearchFn   func(context.Context, string) ([]model.Product, error)
	CategoryFn func(context.Context, int64) ([]model.Product, error)
}

func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "product", Price: 100, Stock: 5}}, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product", Price: 100, Stock: 5}, nil
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	p.ID = 1
	return &p, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, p)
	}
	p.ID = id
	return &p, nil
}

func (s CatalogFacadeStub) PatchProduct(ctx context.Context, id int64, fields map[string]any) (*model.Product, error) {
	if s.PatchFn != nil {
		return s.PatchFn(ctx, id, fields)
	}
	return &model.Product{ID: id, Name: "product"}, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, term)
	}
	return []model.Product{{ID: 1, Name: "product"}}, nil
}

func (s CatalogFacadeStub) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, categoryID)
	}
	return []model.Product{{ID: 1, Name: "product"}}, nil
}

// PaymentFacadeStub simulates payment orchestration.
type PaymentFacadeStub struct {
	InitiateFn func(context.Context, usecase.InitiateParams) (*model.PaymentRedirect, error)
	ConfirmFn  func(context.Context, string) (*model.ConfirmResult, error)
	AbortedFn  func(context.Context, string, string, string) (*usecase.CancellationNotice, error)
	TimeoutFn  func(context.Context, string, string) (*usecase.CancellationNotice, error)
}

func (s PaymentFacadeStub) InitiatePayment(ctx context.Context, params usecase.InitiateParams) (*model.PaymentRedirect, error) {
	if s.InitiateFn != nil {
		return s.InitiateFn(ctx, params)
	}
	return &model.PaymentRedirect{URL: "https://gateway.example/pay", Token: "tok"}, nil
}

func (s PaymentFacadeStub) ConfirmPayment(ctx context.Context, token string) (*model.ConfirmResult, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, token)
	}
	return &model.ConfirmResult{Success: true, Message: "payment completed"}, nil
}

func (s PaymentFacadeStub) PaymentAborted(ctx context.Context, token, orderCode, sessionID string) (*usecase.CancellationNotice, error) {
	if s.AbortedFn != nil {
		return s.AbortedFn(ctx, token, orderCode, sessionID)
	}
	return &usecase.CancellationNotice{OrderCode: orderCode, SessionID: sessionID}, nil
}

func (s PaymentFacadeStub) PaymentTimeout(ctx context.Context, sessionID, orderCode string) (*usecase.CancellationNotice, error) {
	if s.TimeoutFn != nil {
		return s.TimeoutFn(ctx, sessionID, orderCode)
	}
	return &usecase.CancellationNotice{OrderCode: orderCode, SessionID: sessionID}, nil
}

// CommerceFacadeStub aggregates facade stubs for router level tests.
type CommerceFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	PaymentFacadeStub
}

// LedgerStub records pending transaction sweeps for worker tests.
type LedgerStub struct {
	mu      sync.Mutex
	SweepFn func(context.Context, time.Time) (int64, error)
	Cutoffs []time.Time
}

// SweepPendingTransactions records the cutoff and delegates when configured.
func (s *LedgerStub) SweepPendingTransactions(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	s.Cutoffs = append(s.Cutoffs, cutoff)
	s.mu.Unlock()
	if s.SweepFn != nil {
		return s.SweepFn(ctx, cutoff)
	}
	return 0, nil
}

// SweepCount returns how many sweeps were recorded.
func (s *LedgerStub) SweepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Cutoffs)
}
