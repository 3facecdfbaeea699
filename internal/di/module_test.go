package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/spinzone/backend/internal/adapter/gateway"
	"github.com/spinzone/backend/internal/app"
	"github.com/spinzone/backend/internal/config"
	"github.com/spinzone/backend/internal/domain/repository"
	"github.com/spinzone/backend/internal/storage/postgres"
	"github.com/spinzone/backend/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		JWTSecret:          "secret",
		GatewayEnvironment: "integration",
		PendingTTL:         time.Minute,
		SweepInterval:      time.Minute,
		ShutdownTimeout:    time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()
	pendingRepo := test.NewPendingRepositoryStub()
	gatewayStub := &test.GatewayClientStub{}

	var facade *app.CommerceFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.PendingTransactionRepository(pendingRepo)),
			fx.Replace(gateway.Client(gatewayStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected commerce facade instance")
	}
}
