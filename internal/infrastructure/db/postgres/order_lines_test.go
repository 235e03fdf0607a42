package postgres

import (
	"errors"
	"testing"

	"github.com/solestore/storefront-api/internal/core/domain"
)

func TestOrderLines_SingleLine(t *testing.T) {
	items := []cartItemRecord{
		{UserID: 7, ProductID: 1, Size: "42", Quantity: 2},
	}
	products := map[uint]*productRecord{
		1: {ID: 1, Name: "Zapatillas Running Pro", Price: 10.00, Stock: 5},
	}

	orderItems, total, err := orderLines(items, products)
	if err != nil {
		t.Fatalf("orderLines: %v", err)
	}
	if total != 20.00 {
		t.Errorf("total = %.2f, want 20.00", total)
	}
	if len(orderItems) != 1 {
		t.Fatalf("items = %d, want 1", len(orderItems))
	}
	line := orderItems[0]
	if line.ProductID != 1 || line.Quantity != 2 || line.Price != 10.00 || line.Size != "42" {
		t.Errorf("unexpected snapshot: %+v", line)
	}
	if products[1].Stock != 5 {
		t.Errorf("stock mutated by computation: %d", products[1].Stock)
	}
}

func TestOrderLines_OverStock(t *testing.T) {
	items := []cartItemRecord{
		{UserID: 7, ProductID: 2, Size: "40", Quantity: 3},
	}
	products := map[uint]*productRecord{
		2: {ID: 2, Name: "Botas de Cuero Marrón", Price: 149.99, Stock: 1},
	}

	orderItems, total, err := orderLines(items, products)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if stockErr.ProductID != 2 || stockErr.Name != "Botas de Cuero Marrón" {
		t.Errorf("error names wrong product: %+v", stockErr)
	}
	if stockErr.Requested != 3 || stockErr.Available != 1 {
		t.Errorf("requested/available = %d/%d, want 3/1", stockErr.Requested, stockErr.Available)
	}
	if orderItems != nil || total != 0 {
		t.Errorf("no snapshots expected on failure, got %d items, total %.2f", len(orderItems), total)
	}
}

func TestOrderLines_SameProductTwoSizesAggregated(t *testing.T) {
	// Two lines of the same product pass individually but exceed stock
	// combined; the error must report the combined demand.
	items := []cartItemRecord{
		{UserID: 7, ProductID: 1, Size: "42", Quantity: 3},
		{UserID: 7, ProductID: 1, Size: "43", Quantity: 3},
	}
	products := map[uint]*productRecord{
		1: {ID: 1, Name: "Zapatillas Running Pro", Price: 89.99, Stock: 5},
	}

	_, _, err := orderLines(items, products)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if stockErr.Requested != 6 || stockErr.Available != 5 {
		t.Errorf("requested/available = %d/%d, want 6/5", stockErr.Requested, stockErr.Available)
	}
}

func TestOrderLines_SameProductTwoSizesWithinStock(t *testing.T) {
	items := []cartItemRecord{
		{UserID: 7, ProductID: 1, Size: "42", Quantity: 2},
		{UserID: 7, ProductID: 1, Size: "43", Quantity: 3},
	}
	products := map[uint]*productRecord{
		1: {ID: 1, Name: "Zapatillas Running Pro", Price: 10.00, Stock: 5},
	}

	orderItems, total, err := orderLines(items, products)
	if err != nil {
		t.Fatalf("orderLines: %v", err)
	}
	if len(orderItems) != 2 {
		t.Fatalf("items = %d, want one snapshot per cart line", len(orderItems))
	}
	if total != 50.00 {
		t.Errorf("total = %.2f, want 50.00", total)
	}
}

func TestOrderLines_MultiProductTotal(t *testing.T) {
	items := []cartItemRecord{
		{UserID: 7, ProductID: 1, Size: "42", Quantity: 2},
		{UserID: 7, ProductID: 2, Size: "41", Quantity: 1},
	}
	products := map[uint]*productRecord{
		1: {ID: 1, Name: "Zapatillas Running Pro", Price: 89.99, Stock: 10},
		2: {ID: 2, Name: "Zapatos Oxford Clásicos", Price: 129.99, Stock: 3},
	}

	orderItems, total, err := orderLines(items, products)
	if err != nil {
		t.Fatalf("orderLines: %v", err)
	}
	want := 2*89.99 + 129.99
	if total != want {
		t.Errorf("total = %.2f, want %.2f", total, want)
	}
	if len(orderItems) != 2 {
		t.Errorf("items = %d, want 2", len(orderItems))
	}
	// Snapshots carry the price at purchase; later edits to the product
	// row must not change them.
	products[1].Price = 999.99
	if orderItems[0].Price != 89.99 {
		t.Errorf("snapshot price = %.2f, want 89.99", orderItems[0].Price)
	}
}

func TestOrderLines_MissingProduct(t *testing.T) {
	items := []cartItemRecord{
		{UserID: 7, ProductID: 9, Size: "42", Quantity: 1},
	}

	_, _, err := orderLines(items, map[uint]*productRecord{})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestRequestedQuantities_SumsAcrossSizes(t *testing.T) {
	requested := requestedQuantities([]cartItemRecord{
		{ProductID: 1, Size: "42", Quantity: 2},
		{ProductID: 1, Size: "43", Quantity: 1},
		{ProductID: 2, Size: "40", Quantity: 4},
	})
	if requested[1] != 3 || requested[2] != 4 {
		t.Errorf("requested = %v, want map[1:3 2:4]", requested)
	}
}
