package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/domain/repository"
)

// OrderMaterializer turns an authorized payment into durable order and
// inventory state. Every bookkeeping step after the order insert is
// independently fallible: failures are logged and collected into the
// reconciliation report, never aborting — the payer has already been charged.
type OrderMaterializer struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	pending  repository.PendingTransactionRepository
	logger   *slog.Logger

	newID func() string
}

// NewOrderMaterializer constructs OrderMaterializer.
func NewOrderMaterializer(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	pending repository.PendingTransactionRepository,
	logger *slog.Logger,
) *OrderMaterializer {
	return &OrderMaterializer{
		orders:   orders,
		products: products,
		pending:  pending,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Materialize creates the order for an authorized buy order. The unique
// buy-order key makes it idempotent: a repeated confirm resolves to the
// existing order with no new lines and no stock decrement. staged may be nil
// when the ledger entry was lost; the order is then created without lines.
func (m *OrderMaterializer) Materialize(ctx context.Context, staged *model.PendingTransaction, buyOrder string) (*model.Order, []model.ReconciliationIssue) {
	var issues []model.ReconciliationIssue

	order := model.Order{
		ID:             m.newID(),
		BuyOrder:       buyOrder,
		PaymentMethod:  model.PaymentMethodWebpay,
		OrderStatus:    model.OrderStatusPending,
		ShipmentStatus: model.ShipmentStatusPending,
	}
	if staged != nil {
		order.CustomerID = staged.UserID
		for _, item := range staged.Items {
			order.Lines = append(order.Lines, model.OrderLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.UnitPrice * int64(item.Quantity),
			})
		}
	} else {
		issues = append(issues, model.ReconciliationIssue{
			Step:   "load staged transaction",
			Reason: "no ledger entry for buy order, order created without lines",
		})
	}

	created, isNew, err := m.orders.Create(ctx, order)
	if err != nil {
		m.logger.Error("order creation failed",
			slog.String("buy_order", buyOrder),
			slog.String("error", err.Error()),
		)
		issues = append(issues, model.ReconciliationIssue{Step: "create order", Reason: err.Error()})
		return nil, issues
	}

	if !isNew {
		m.logger.Info("buy order already materialized",
			slog.String("buy_order", buyOrder),
			slog.String("order_id", created.ID),
		)
		m.cleanupStaged(ctx, staged, buyOrder, &issues)
		return created, issues
	}

	for _, line := range created.Lines {
		if err := m.products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			m.logger.Error("stock decrement failed",
				slog.Int64("product_id", line.ProductID),
				slog.String("error", err.Error()),
			)
			issues = append(issues, model.ReconciliationIssue{Step: "decrement stock", Reason: err.Error()})
		}
	}

	m.cleanupStaged(ctx, staged, buyOrder, &issues)
	return created, issues
}

func (m *OrderMaterializer) cleanupStaged(ctx context.Context, staged *model.PendingTransaction, buyOrder string, issues *[]model.ReconciliationIssue) {
	if staged == nil {
		return
	}
	if err := m.pending.Delete(ctx, buyOrder); err != nil {
		m.logger.Error("pending transaction cleanup failed",
			slog.String("buy_order", buyOrder),
			slog.String("error", err.Error()),
		)
		*issues = append(*issues, model.ReconciliationIssue{Step: "delete staged transaction", Reason: err.Error()})
	}
}
