package usecase_test

import (
	"context"
	"io"
	"testing"

	"go-product-catalog/internal/delivery/dto"
	domainRepo "go-product-catalog/internal/domain/repository"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/testdb"
	"go-product-catalog/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newUsecase(t *testing.T) usecase.ProductUsecase {
	t.Helper()
	db := testdb.OpenWithProducts(t)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return usecase.NewProductUsecase(log, repository.NewProductRepository(db))
}

func strPtr(s string) *string { return &s }

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateAppliesDefaults(t *testing.T) {
	u := newUsecase(t)

	created, err := u.Create(context.Background(), &dto.CreateProductRequest{
		Name:  strPtr("Classic White T-Shirt"),
		Price: pricePtr("19.99"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("id not assigned")
	}
	if created.ExtID != nil {
		t.Fatalf("want nil ext_id, got %d", *created.ExtID)
	}
	if created.Stock != 0 {
		t.Fatalf("want stock 0, got %d", created.Stock)
	}
	if created.Price != 19.99 {
		t.Fatalf("want price 19.99, got %v", created.Price)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

func TestCreateWithoutRequiredFieldsFailsGenerically(t *testing.T) {
	u := newUsecase(t)
	ctx := context.Background()

	if _, err := u.Create(ctx, &dto.CreateProductRequest{Price: pricePtr("9.99")}); err != usecase.ErrCreateFailed {
		t.Fatalf("want ErrCreateFailed, got %v", err)
	}
	if _, err := u.Create(ctx, &dto.CreateProductRequest{Name: strPtr("No Price")}); err != usecase.ErrCreateFailed {
		t.Fatalf("want ErrCreateFailed, got %v", err)
	}

	products, err := u.List(ctx, domainRepo.ProductFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Fatalf("want empty catalog after failed creates, got %d rows", len(products))
	}
}

func TestListEmptyCatalogIsEmptySlice(t *testing.T) {
	u := newUsecase(t)

	products, err := u.List(context.Background(), domainRepo.ProductFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if products == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(products) != 0 {
		t.Fatalf("want 0 products, got %d", len(products))
	}
}

func TestCreateThenListIncludesNewProduct(t *testing.T) {
	u := newUsecase(t)
	ctx := context.Background()

	stock := 5
	first, err := u.Create(ctx, &dto.CreateProductRequest{
		Name:     strPtr("Running Sneakers"),
		Category: strPtr("shoes"),
		Price:    pricePtr("79.99"),
		Stock:    &stock,
	})
	if err != nil {
		t.Fatal(err)
	}

	second, err := u.Create(ctx, &dto.CreateProductRequest{
		Name:  strPtr("Canvas High-Tops"),
		Price: pricePtr("59.99"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID <= first.ID {
		t.Fatalf("want id greater than %d, got %d", first.ID, second.ID)
	}

	products, err := u.List(ctx, domainRepo.ProductFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("want 2 products, got %d", len(products))
	}
	if products[1].ID != second.ID {
		t.Fatalf("new product not last in id order: %+v", products)
	}
}
