package service

import (
	"errors"
	"testing"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"

	"github.com/shopspring/decimal"
)

func newOrderService(t *testing.T) (*OrderService, repository.OrderRepository) {
	t.Helper()
	db := newTestDB(t, &models.Order{}, &models.OrderItem{})
	repo := repository.NewOrderRepository(db)
	return NewOrderService(repo), repo
}

func seedOrder(t *testing.T, repo repository.OrderRepository, orderNo string, userID uint) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:     orderNo,
		UserID:      userID,
		Status:      constants.OrderStatusPending,
		Currency:    constants.SiteCurrencyDefault,
		TotalAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("25.50")),
		Items: []models.OrderItem{
			{Name: "A", UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), Quantity: 2, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20))},
		},
	}
	if err := repo.CreateWithItems(order); err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestOrderCompleteExactlyOnce(t *testing.T) {
	svc, repo := newOrderService(t)
	order := seedOrder(t, repo, "ord-1", 21)

	completed, err := svc.Complete(order.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != constants.OrderStatusCompleted {
		t.Fatalf("expected completed status, got %s", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Fatalf("expected completion time recorded")
	}

	// the transition happens at most once
	if _, err := svc.Complete(order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid on second completion, got: %v", err)
	}
}

func TestOrderCompleteUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	if _, err := svc.Complete(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestOrderListByUser(t *testing.T) {
	svc, repo := newOrderService(t)
	seedOrder(t, repo, "ord-2", 22)
	seedOrder(t, repo, "ord-3", 22)
	seedOrder(t, repo, "ord-4", 23)

	orders, total, err := svc.ListByUser(22, 1, 20)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 22, got total=%d len=%d", total, len(orders))
	}
	for _, order := range orders {
		if order.UserID != 22 {
			t.Fatalf("unexpected order in user listing: %+v", order)
		}
		if len(order.Items) == 0 {
			t.Fatalf("expected items preloaded, got none for %s", order.OrderNo)
		}
	}
}

func TestOrderAdminListFilters(t *testing.T) {
	svc, repo := newOrderService(t)
	pending := seedOrder(t, repo, "ord-5", 24)
	done := seedOrder(t, repo, "ord-6", 24)
	if _, err := svc.Complete(done.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	orders, total, err := svc.ListAdmin(repository.OrderListFilter{Status: constants.OrderStatusPending})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].ID != pending.ID {
		t.Fatalf("unexpected pending filter result: total=%d orders=%+v", total, orders)
	}

	orders, total, err = svc.ListAdmin(repository.OrderListFilter{OrderNo: "ord-6"})
	if err != nil {
		t.Fatalf("admin list by order no failed: %v", err)
	}
	if total != 1 || orders[0].Status != constants.OrderStatusCompleted {
		t.Fatalf("unexpected order no filter result: total=%d orders=%+v", total, orders)
	}
}
