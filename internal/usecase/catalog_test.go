package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
	testhelpers "github.com/spinzone/backend/internal/test"
	"github.com/spinzone/backend/internal/usecase"
)

func TestCatalogCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		product model.Product
		want    error
	}{
		{"empty name", model.Product{Name: "  ", Price: 100}, domainErrors.ErrMissingField},
		{"negative price", model.Product{Name: "tyre", Price: -1}, domainErrors.ErrInvalidAmount},
		{"negative stock", model.Product{Name: "tyre", Price: 100, Stock: -1}, domainErrors.ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := usecase.NewCatalogUseCase(testhelpers.NewProductRepositoryStub())
			if _, err := catalog.Create(context.Background(), tc.product); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCatalogCreateAndGet(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	catalog := usecase.NewCatalogUseCase(repo)

	created, err := catalog.Create(context.Background(), model.Product{Name: "tyre", Price: 12990, Stock: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	fetched, err := catalog.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Name != "tyre" || fetched.Price != 12990 {
		t.Fatalf("unexpected product %+v", fetched)
	}
}

func TestCatalogUpdateValidation(t *testing.T) {
	catalog := usecase.NewCatalogUseCase(testhelpers.NewProductRepositoryStub())
	if _, err := catalog.Update(context.Background(), 1, model.Product{Name: ""}); !errors.Is(err, domainErrors.ErrMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
}

func TestCatalogSearchRequiresTerm(t *testing.T) {
	catalog := usecase.NewCatalogUseCase(testhelpers.NewProductRepositoryStub())
	if _, err := catalog.Search(context.Background(), "   "); !errors.Is(err, domainErrors.ErrMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
}

func TestCatalogDeleteMissing(t *testing.T) {
	catalog := usecase.NewCatalogUseCase(testhelpers.NewProductRepositoryStub())
	if err := catalog.Delete(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
