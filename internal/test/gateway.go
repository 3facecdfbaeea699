package test

import (
	"context"

	"github.com/spinzone/backend/internal/domain/model"
)

// GatewayClientStub simulates the payment gateway and counts calls so tests
// can assert no network round-trip happened.
type GatewayClientStub struct {
	CreateFn func(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (*model.GatewayTransaction, error)
	CommitFn func(ctx context.Context, token string) (*model.GatewayTransaction, error)
	StatusFn func(ctx context.Context, token string) (*model.GatewayTransaction, error)

	CreateCalls int
	CommitCalls int
	StatusCalls int
}

// Create delegates to CreateFn or returns an initialized transaction.
func (s *GatewayClientStub) Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (*model.GatewayTransaction, error) {
	s.CreateCalls++
	if s.CreateFn != nil {
		return s.CreateFn(ctx, buyOrder, sessionID, amount, returnURL)
	}
	return &model.GatewayTransaction{
		Token:    "tok-" + buyOrder,
		URL:      "https://gateway.example/pay",
		Status:   model.GatewayStatusInitialized,
		BuyOrder: buyOrder,
		Amount:   amount,
	}, nil
}

// Commit delegates to CommitFn or authorizes unconditionally.
func (s *GatewayClientStub) Commit(ctx context.Context, token string) (*model.GatewayTransaction, error) {
	s.CommitCalls++
	if s.CommitFn != nil {
		return s.CommitFn(ctx, token)
	}
	return &model.GatewayTransaction{
		Token:  token,
		Status: model.GatewayStatusAuthorized,
	}, nil
}

// Status delegates to StatusFn or reports a failed transaction.
func (s *GatewayClientStub) Status(ctx context.Context, token string) (*model.GatewayTransaction, error) {
	s.StatusCalls++
	if s.StatusFn != nil {
		return s.StatusFn(ctx, token)
	}
	return &model.GatewayTransaction{
		Token:  token,
		Status: model.GatewayStatusFailed,
	}, nil
}
