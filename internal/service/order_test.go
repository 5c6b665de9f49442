package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/repository"

	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Castillo Real", 19.99, 10)
	svc := newOrderService(db)

	resp, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if resp.Total != 39.98 {
		t.Errorf("expected total 39.98, got %v", resp.Total)
	}
	if !strings.HasPrefix(resp.Number, "PED-") {
		t.Errorf("expected order number with PED- prefix, got %q", resp.Number)
	}
	if len(resp.Details) != 1 {
		t.Fatalf("expected 1 line detail, got %d", len(resp.Details))
	}
	if resp.Details[0].Subtotal != 39.98 || resp.Details[0].UnitPrice != 19.99 {
		t.Errorf("unexpected line detail: %+v", resp.Details[0])
	}

	if stock := reloadProduct(t, db, product.ID).Stock; stock != 8 {
		t.Errorf("expected stock 8 after order, got %d", stock)
	}

	order := reloadOrder(t, db, resp.OrderID)
	if order.Status != model.OrderStatusPending {
		t.Errorf("expected status %s, got %s", model.OrderStatusPending, order.Status)
	}
	if order.ShippingAddress != user.ShippingAddress {
		t.Errorf("expected shipping address snapshot %q, got %q", user.ShippingAddress, order.ShippingAddress)
	}

	var lineSum float64
	for _, line := range order.Lines {
		lineSum += line.Subtotal
	}
	if lineSum != order.TotalPrice {
		t.Errorf("line subtotals %v do not match stored total %v", lineSum, order.TotalPrice)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Castillo Real", 19.99, 1)
	svc := newOrderService(db)

	_, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	if stock := reloadProduct(t, db, product.ID).Stock; stock != 1 {
		t.Errorf("expected stock unchanged at 1, got %d", stock)
	}

	var orders, lines int64
	db.Model(&model.Order{}).Count(&orders)
	db.Model(&model.OrderLine{}).Count(&lines)
	if orders != 0 || lines != 0 {
		t.Errorf("expected full rollback, found %d orders and %d lines", orders, lines)
	}
}

func TestCreateOrderPartialFailureRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Castillo Real", 10.0, 10)
	svc := newOrderService(db)

	// second line references a missing product, so the first line's stock
	// decrement must be undone
	_, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: user.ID,
		Products: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 3},
			{ProductID: 9999, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if stock := reloadProduct(t, db, product.ID).Stock; stock != 10 {
		t.Errorf("expected stock restored to 10, got %d", stock)
	}
}

func TestCreateOrderDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Castillo Real", 5.0, 3)
	svc := newOrderService(db)

	// each duplicated line re-checks the stock left by the previous one
	_, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: user.ID,
		Products: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 2},
		},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on second duplicate line, got %v", err)
	}
	if stock := reloadProduct(t, db, product.ID).Stock; stock != 3 {
		t.Errorf("expected stock unchanged at 3, got %d", stock)
	}

	resp, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: user.ID,
		Products: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder with fitting duplicates: %v", err)
	}
	if resp.Total != 15.0 {
		t.Errorf("expected total 15.0, got %v", resp.Total)
	}
	if stock := reloadProduct(t, db, product.ID).Stock; stock != 0 {
		t.Errorf("expected stock drained to 0, got %d", stock)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{UserID: 1})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for empty products, got %v", err)
	}

	_, err = svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID:   1,
		Products: []dto.OrderItemRequest{{ProductID: 1, Quantity: 0}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for zero quantity, got %v", err)
	}
}

func TestCreateOrderMissingUser(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Castillo Real", 19.99, 10)
	svc := newOrderService(db)

	_, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID:   42,
		Products: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	var orders int64
	db.Model(&model.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("expected no order rows, found %d", orders)
	}
}

func TestCancelOrderRestoresStockOnce(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Castillo Real", 19.99, 10)
	svc := newOrderService(db)

	resp, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if stock := reloadProduct(t, db, product.ID).Stock; stock != 8 {
		t.Fatalf("expected stock 8 before cancel, got %d", stock)
	}

	if err := svc.CancelOrder(context.Background(), resp.OrderID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if stock := reloadProduct(t, db, product.ID).Stock; stock != 10 {
		t.Errorf("expected stock restored to 10, got %d", stock)
	}
	if status := reloadOrder(t, db, resp.OrderID).Status; status != model.OrderStatusCancelled {
		t.Errorf("expected status %s, got %s", model.OrderStatusCancelled, status)
	}

	// second cancel must not restock again
	if err := svc.CancelOrder(context.Background(), resp.OrderID); err != nil {
		t.Fatalf("second CancelOrder: %v", err)
	}
	if stock := reloadProduct(t, db, product.ID).Stock; stock != 10 {
		t.Errorf("expected stock still 10 after double cancel, got %d", stock)
	}
}

func TestCancelOrderMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	if err := svc.CancelOrder(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestConfirmOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Castillo Real", 19.99, 10)
	svc := newOrderService(db)

	resp, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID:   user.ID,
		Products: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := svc.ConfirmOrder(context.Background(), resp.OrderID); err != nil {
		t.Fatalf("ConfirmOrder: %v", err)
	}
	if status := reloadOrder(t, db, resp.OrderID).Status; status != model.OrderStatusConfirmed {
		t.Errorf("expected status %s, got %s", model.OrderStatusConfirmed, status)
	}

	// confirmation leaves stock alone
	if stock := reloadProduct(t, db, product.ID).Stock; stock != 9 {
		t.Errorf("expected stock 9, got %d", stock)
	}

	if err := svc.ConfirmOrder(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
