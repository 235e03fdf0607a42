package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

func TestListProducts_PaginationDefaults(t *testing.T) {
	repo := newStubCatalogRepo()
	for i := 0; i < 25; i++ {
		repo.addProduct(domain.Product{Name: fmt.Sprintf("Shoe %02d", i), Price: 10, CategoryID: 1})
	}
	svc := NewCatalogService(repo, zerolog.Nop())

	result, err := svc.ListProducts(context.Background(), ports.ListProductsFilter{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if result.Page != 1 || result.Limit != 20 {
		t.Errorf("page/limit = %d/%d, want 1/20", result.Page, result.Limit)
	}
	if len(result.Items) != 20 {
		t.Errorf("items = %d, want 20", len(result.Items))
	}
	if result.Total != 25 {
		t.Errorf("total = %d, want 25", result.Total)
	}
	if result.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", result.TotalPages)
	}
}

func TestListProducts_LimitCapped(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), zerolog.Nop())

	result, err := svc.ListProducts(context.Background(), ports.ListProductsFilter{Limit: 5000})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if result.Limit != 100 {
		t.Errorf("limit = %d, want 100", result.Limit)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), zerolog.Nop())

	cases := []ports.ProductInput{
		{Name: "", Price: 10, CategoryID: 1},
		{Name: "Shoe", Price: 0, CategoryID: 1},
		{Name: "Shoe", Price: -5, CategoryID: 1},
		{Name: "Shoe", Price: 10, CategoryID: 0},
	}
	for _, input := range cases {
		if _, err := svc.CreateProduct(context.Background(), input); !errors.Is(err, ErrInvalidProduct) {
			t.Errorf("CreateProduct(%+v): err = %v, want ErrInvalidProduct", input, err)
		}
	}
}

func TestCreateProduct_NegativeStockClamped(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.CreateProduct(context.Background(), ports.ProductInput{
		Name: "Shoe", Price: 10, CategoryID: 1, Stock: -3,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.Stock != 0 {
		t.Errorf("stock = %d, want 0", created.Stock)
	}
}

func TestUpdateProduct_InvalidValues(t *testing.T) {
	repo := newStubCatalogRepo()
	repo.addProduct(domain.Product{ID: 1, Name: "Shoe", Price: 10, CategoryID: 1})
	svc := NewCatalogService(repo, zerolog.Nop())

	badPrice := -1.0
	if _, err := svc.UpdateProduct(context.Background(), 1, ports.ProductUpdate{Price: &badPrice}); !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("negative price: err = %v, want ErrInvalidProduct", err)
	}
	badStock := -1
	if _, err := svc.UpdateProduct(context.Background(), 1, ports.ProductUpdate{Stock: &badStock}); !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("negative stock: err = %v, want ErrInvalidProduct", err)
	}
}

func TestUpdateProduct_Partial(t *testing.T) {
	repo := newStubCatalogRepo()
	repo.addProduct(domain.Product{ID: 1, Name: "Shoe", Price: 10, Stock: 5, CategoryID: 1})
	svc := NewCatalogService(repo, zerolog.Nop())

	newStock := 42
	updated, err := svc.UpdateProduct(context.Background(), 1, ports.ProductUpdate{Stock: &newStock})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Stock != 42 {
		t.Errorf("stock = %d, want 42", updated.Stock)
	}
	if updated.Name != "Shoe" || updated.Price != 10 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), zerolog.Nop())

	if err := svc.DeleteProduct(context.Background(), 99); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}
