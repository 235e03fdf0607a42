package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

func ordersFixture() (*stubOrderRepo, *stubPublisher, *OrderService) {
	repo := newStubOrderRepo()
	repo.orders[1] = &domain.Order{ID: 1, UserID: 7, Status: domain.StatusPending}
	repo.orders[2] = &domain.Order{ID: 2, UserID: 8, Status: domain.StatusShipped}
	publisher := &stubPublisher{}
	return repo, publisher, NewOrderService(repo, publisher, zerolog.Nop())
}

func TestListOrders_UserSeesOwnOnly(t *testing.T) {
	_, _, svc := ordersFixture()

	orders, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{UserID: 7, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 1 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestListOrders_AdminSeesAll(t *testing.T) {
	_, _, svc := ordersFixture()

	orders, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{UserID: 9, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo, publisher, svc := ordersFixture()

	order, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{
		OrderID:    1,
		Status:     "PROCESSING",
		ActorEmail: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if order.Status != domain.StatusProcessing {
		t.Errorf("status = %s, want PROCESSING", order.Status)
	}
	if len(repo.statusUpdates) != 1 || repo.statusUpdates[0] != domain.StatusProcessing {
		t.Errorf("repo updates = %v", repo.statusUpdates)
	}

	events := publisher.all()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Status != "PROCESSING" || events[0].Actor != "admin@example.com" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	repo, publisher, svc := ordersFixture()

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{OrderID: 1, Status: "DELIVERED"})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if len(repo.statusUpdates) != 0 {
		t.Errorf("no repo update expected, got %v", repo.statusUpdates)
	}
	if len(publisher.all()) != 0 {
		t.Errorf("no events expected on rejected transition")
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	_, _, svc := ordersFixture()

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{OrderID: 1, Status: "TELEPORTED"})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	_, _, svc := ordersFixture()

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{OrderID: 99, Status: "PROCESSING"})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestUpdateStatus_CancelFromShipped(t *testing.T) {
	_, _, svc := ordersFixture()

	order, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{OrderID: 2, Status: "CANCELLED"})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if order.Status != domain.StatusCancelled {
		t.Errorf("status = %s, want CANCELLED", order.Status)
	}
}
