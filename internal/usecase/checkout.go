package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spinzone/backend/internal/adapter/gateway"
	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/domain/repository"
)

// InitiateParams carries everything needed to start a payment.
type InitiateParams struct {
	BuyOrder  string
	SessionID string
	Amount    int64
	ReturnURL string
	Items     []model.CartItem
	UserID    *int64
}

// CancellationNotice echoes identifiers of an aborted or timed out checkout.
type CancellationNotice struct {
	OrderCode string
	SessionID string
}

// CheckoutUseCase is the payment orchestration state machine:
// initiate → stage → redirect; confirm → commit → materialize-or-reject.
type CheckoutUseCase struct {
	gateway      gateway.Client
	pending      repository.PendingTransactionRepository
	materializer *OrderMaterializer
	logger       *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	client gateway.Client,
	pending repository.PendingTransactionRepository,
	materializer *OrderMaterializer,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		gateway:      client,
		pending:      pending,
		materializer: materializer,
		logger:       logger,
	}
}

// Initiate creates the transaction at the gateway and stages it in the
// ledger. Staging failure is non-fatal: the redirect URL is the time-critical
// artifact, a lost ledger entry only degrades later reconciliation.
func (u *CheckoutUseCase) Initiate(ctx context.Context, params InitiateParams) (*model.PaymentRedirect, error) {
	if params.BuyOrder == "" || params.SessionID == "" || params.ReturnURL == "" {
		return nil, domainErrors.ErrMissingField
	}
	if params.Amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if !ValidateBuyOrder(params.BuyOrder) {
		return nil, domainErrors.ErrInvalidBuyOrder
	}

	created, err := u.gateway.Create(ctx, params.BuyOrder, params.SessionID, params.Amount, params.ReturnURL)
	if err != nil {
		return nil, err
	}

	staged := model.PendingTransaction{
		BuyOrder:  params.BuyOrder,
		SessionID: params.SessionID,
		Amount:    params.Amount,
		Items:     params.Items,
		UserID:    params.UserID,
	}
	if err := u.pending.Put(ctx, staged); err != nil {
		u.logger.Error("staging pending transaction failed",
			slog.String("buy_order", params.BuyOrder),
			slog.String("error", err.Error()),
		)
	}

	return &model.PaymentRedirect{URL: created.URL, Token: created.Token}, nil
}

// Confirm commits the transaction at the gateway and, when authorized,
// materializes the order. Success always reflects the gateway verdict:
// bookkeeping failures are reported, never surfaced as a payment failure.
func (u *CheckoutUseCase) Confirm(ctx context.Context, token string) (*model.ConfirmResult, error) {
	if token == "" {
		return nil, domainErrors.ErrMissingField
	}

	committed, err := u.gateway.Commit(ctx, token)
	if err != nil {
		return nil, err
	}

	if committed.Status != model.GatewayStatusAuthorized {
		u.logger.Info("transaction not authorized",
			slog.String("buy_order", committed.BuyOrder),
			slog.String("status", string(committed.Status)),
		)
		return &model.ConfirmResult{
			Success:     false,
			Message:     "transaction rejected or cancelled",
			Transaction: committed,
		}, nil
	}

	result := &model.ConfirmResult{
		Success:     true,
		Message:     "payment completed",
		Transaction: committed,
	}

	staged, err := u.pending.GetByBuyOrder(ctx, committed.BuyOrder)
	if err != nil {
		staged = nil
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("pending transaction lookup failed",
				slog.String("buy_order", committed.BuyOrder),
				slog.String("error", err.Error()),
			)
			result.Reconciliation = append(result.Reconciliation, model.ReconciliationIssue{
				Step:   "lookup staged transaction",
				Reason: err.Error(),
			})
		}
	}

	order, issues := u.materializer.Materialize(ctx, staged, committed.BuyOrder)
	result.Reconciliation = append(result.Reconciliation, issues...)
	if order != nil {
		result.OrderID = order.ID
	}

	if len(result.Reconciliation) > 0 {
		u.logger.Warn("confirm completed with reconciliation gaps",
			slog.String("buy_order", committed.BuyOrder),
			slog.Int("issues", len(result.Reconciliation)),
		)
	}

	return result, nil
}

// HandleAbort acknowledges a payer-cancelled checkout. The gateway status
// query is best-effort for logging only; no ledger or order mutation happens.
func (u *CheckoutUseCase) HandleAbort(ctx context.Context, token, orderCode, sessionID string) (*CancellationNotice, error) {
	if token == "" {
		return nil, domainErrors.ErrMissingField
	}

	if status, err := u.gateway.Status(ctx, token); err != nil {
		u.logger.Error("status query for aborted transaction failed", slog.String("error", err.Error()))
	} else {
		u.logger.Info("aborted transaction status",
			slog.String("buy_order", status.BuyOrder),
			slog.String("status", string(status.Status)),
		)
	}

	return &CancellationNotice{OrderCode: orderCode, SessionID: sessionID}, nil
}

// HandleTimeout acknowledges a checkout that exceeded the gateway's session
// window. Pure notification.
func (u *CheckoutUseCase) HandleTimeout(ctx context.Context, sessionID, orderCode string) (*CancellationNotice, error) {
	if sessionID == "" || orderCode == "" {
		return nil, domainErrors.ErrMissingField
	}
	return &CancellationNotice{OrderCode: orderCode, SessionID: sessionID}, nil
}
