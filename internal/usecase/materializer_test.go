package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spinzone/backend/internal/domain/model"
	testhelpers "github.com/spinzone/backend/internal/test"
	"github.com/spinzone/backend/internal/usecase"
)

type materializerFixture struct {
	orders       *testhelpers.OrderRepositoryStub
	products     *testhelpers.ProductRepositoryStub
	pending      *testhelpers.PendingRepositoryStub
	materializer *usecase.OrderMaterializer
}

func newMaterializerFixture() *materializerFixture {
	orders := testhelpers.NewOrderRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	pending := testhelpers.NewPendingRepositoryStub()
	return &materializerFixture{
		orders:       orders,
		products:     products,
		pending:      pending,
		materializer: usecase.NewOrderMaterializer(orders, products, pending, discardLogger()),
	}
}

func stagedTransaction() *model.PendingTransaction {
	userID := int64(42)
	return &model.PendingTransaction{
		BuyOrder:  "ORDER-77",
		SessionID: "sess-77",
		Amount:    9000,
		UserID:    &userID,
		Items: []model.CartItem{
			{ProductID: 1, Quantity: 3, UnitPrice: 3000},
		},
	}
}

func TestMaterializeCreatesOrderWithLines(t *testing.T) {
	f := newMaterializerFixture()
	f.products.Products[1] = &model.Product{ID: 1, Name: "frame", Price: 3000, Stock: 5}
	staged := stagedTransaction()
	_ = f.pending.Put(context.Background(), *staged)

	order, issues := f.materializer.Materialize(context.Background(), staged, staged.BuyOrder)
	if order == nil {
		t.Fatalf("expected order, issues: %+v", issues)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
	if order.ID == "" {
		t.Fatal("expected generated order id")
	}
	if len(order.Lines) != 1 || order.Lines[0].Subtotal != 9000 {
		t.Fatalf("unexpected lines %+v", order.Lines)
	}
	if got := f.products.Products[1].Stock; got != 2 {
		t.Fatalf("expected stock 2, got %d", got)
	}
	if _, ok := f.pending.Entries[staged.BuyOrder]; ok {
		t.Fatal("expected staged transaction deleted")
	}
}

func TestMaterializeWithoutStagedTransaction(t *testing.T) {
	f := newMaterializerFixture()

	order, issues := f.materializer.Materialize(context.Background(), nil, "ORPHAN-2")
	if order == nil {
		t.Fatal("expected order even without ledger entry")
	}
	if len(order.Lines) != 0 {
		t.Fatalf("expected no lines, got %+v", order.Lines)
	}
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %+v", issues)
	}
	if len(f.pending.Deleted) != 0 {
		t.Fatal("no ledger cleanup without staged transaction")
	}
}

func TestMaterializeOrderCreateFailure(t *testing.T) {
	f := newMaterializerFixture()
	f.orders.CreateErr = errors.New("insert failed")
	staged := stagedTransaction()

	order, issues := f.materializer.Materialize(context.Background(), staged, staged.BuyOrder)
	if order != nil {
		t.Fatalf("expected no order, got %+v", order)
	}
	if len(issues) != 1 || issues[0].Step != "create order" {
		t.Fatalf("unexpected issues %+v", issues)
	}
	if len(f.products.DecrementCalls) != 0 {
		t.Fatal("no stock mutation when order insert fails")
	}
}

func TestMaterializeCollectsBookkeepingFailures(t *testing.T) {
	f := newMaterializerFixture()
	f.products.DecrementErr = errors.New("stock update failed")
	f.pending.DeleteErr = errors.New("delete failed")
	staged := stagedTransaction()
	_ = f.pending.Put(context.Background(), *staged)

	order, issues := f.materializer.Materialize(context.Background(), staged, staged.BuyOrder)
	if order == nil {
		t.Fatal("bookkeeping failures must not lose the order")
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", issues)
	}
	steps := map[string]bool{}
	for _, issue := range issues {
		steps[issue.Step] = true
	}
	if !steps["decrement stock"] || !steps["delete staged transaction"] {
		t.Fatalf("unexpected issue steps %+v", issues)
	}
}

func TestMaterializeExistingOrderSkipsDecrement(t *testing.T) {
	f := newMaterializerFixture()
	staged := stagedTransaction()
	existing := model.Order{
		ID:       "prior-id",
		BuyOrder: staged.BuyOrder,
		Lines:    []model.OrderLine{{ProductID: 1, Quantity: 3, UnitPrice: 3000, Subtotal: 9000}},
	}
	if _, _, err := f.orders.Create(context.Background(), existing); err != nil {
		t.Fatalf("seeding order failed: %v", err)
	}
	_ = f.pending.Put(context.Background(), *staged)

	order, issues := f.materializer.Materialize(context.Background(), staged, staged.BuyOrder)
	if order == nil || order.ID != "prior-id" {
		t.Fatalf("expected existing order, got %+v", order)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
	if len(f.products.DecrementCalls) != 0 {
		t.Fatal("existing order must not decrement stock again")
	}
	if _, ok := f.pending.Entries[staged.BuyOrder]; ok {
		t.Fatal("staged transaction must still be cleaned up")
	}
}
