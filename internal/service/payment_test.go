package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/repository"

	"gorm.io/gorm"
)

func newPaymentService(db *gorm.DB, notifier *recordingNotifier) PaymentService {
	return NewPaymentService(
		db,
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
		notifier,
	)
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, number string) *model.Order {
	t.Helper()

	order := &model.Order{
		Number:     number,
		TotalPrice: 50,
		Status:     model.OrderStatusPending,
		UserID:     userID,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	return order
}

func TestRegisterPaymentApproved(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	first := seedOrder(t, db, user.ID, "PED-1-1")
	second := seedOrder(t, db, user.ID, "PED-1-2")
	notifier := &recordingNotifier{}
	svc := newPaymentService(db, notifier)

	resp, err := svc.RegisterPayment(context.Background(), &dto.RegisterPaymentRequest{
		PaymentID: "MP-100",
		OrderIDs:  []uint{first.ID, second.ID},
		Status:    "approved",
		Amount:    100,
	})
	if err != nil {
		t.Fatalf("RegisterPayment: %v", err)
	}

	if !resp.Success || resp.Message != "Pago registrado" {
		t.Errorf("unexpected response: %+v", resp)
	}
	for _, summary := range resp.Orders {
		if summary.Status != model.OrderStatusConfirmed {
			t.Errorf("expected order %d confirmed in summary, got %s", summary.ID, summary.Status)
		}
	}

	for _, id := range []uint{first.ID, second.ID} {
		if status := reloadOrder(t, db, id).Status; status != model.OrderStatusConfirmed {
			t.Errorf("expected order %d confirmed, got %s", id, status)
		}
	}

	// the amount is split evenly across the referenced orders
	var payments []model.Payment
	if err := db.Order("order_id").Find(&payments).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payment rows, got %d", len(payments))
	}
	for _, payment := range payments {
		if payment.Amount != 50 {
			t.Errorf("expected split amount 50, got %v", payment.Amount)
		}
		if payment.Status != model.PaymentStatusApproved {
			t.Errorf("expected payment aprobado, got %s", payment.Status)
		}
		if payment.ExternalID != "MP-100" {
			t.Errorf("expected external id MP-100, got %s", payment.ExternalID)
		}
	}

	if len(notifier.confirmations) != 1 || notifier.confirmations[0] != 100 {
		t.Errorf("expected one confirmation notification for amount 100, got %v", notifier.confirmations)
	}
}

func TestRegisterPaymentPendingLeavesOrders(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, "PED-2-1")
	notifier := &recordingNotifier{}
	svc := newPaymentService(db, notifier)

	_, err := svc.RegisterPayment(context.Background(), &dto.RegisterPaymentRequest{
		PaymentID: "MP-200",
		OrderIDs:  []uint{order.ID},
		Status:    "in_process",
		Amount:    50,
	})
	if err != nil {
		t.Fatalf("RegisterPayment: %v", err)
	}

	if status := reloadOrder(t, db, order.ID).Status; status != model.OrderStatusPending {
		t.Errorf("expected order left pendiente, got %s", status)
	}

	var payment model.Payment
	if err := db.First(&payment).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Status != model.PaymentStatusPending {
		t.Errorf("expected payment pendiente, got %s", payment.Status)
	}
	if len(notifier.confirmations) != 0 {
		t.Errorf("expected no notification for non-approved payment, got %v", notifier.confirmations)
	}
}

func TestRegisterPaymentRepeatUpdates(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, "PED-3-1")
	svc := newPaymentService(db, &recordingNotifier{})

	_, err := svc.RegisterPayment(context.Background(), &dto.RegisterPaymentRequest{
		PaymentID: "MP-300",
		OrderIDs:  []uint{order.ID},
		Status:    "in_process",
		Amount:    50,
	})
	if err != nil {
		t.Fatalf("first RegisterPayment: %v", err)
	}

	resp, err := svc.RegisterPayment(context.Background(), &dto.RegisterPaymentRequest{
		PaymentID: "MP-300",
		OrderIDs:  []uint{order.ID},
		Status:    "approved",
		Amount:    55,
	})
	if err != nil {
		t.Fatalf("second RegisterPayment: %v", err)
	}
	if resp.Message != "Pago actualizado" {
		t.Errorf("expected update message, got %q", resp.Message)
	}

	var payments []model.Payment
	if err := db.Find(&payments).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected the existing payment to be updated, found %d rows", len(payments))
	}
	if payments[0].Status != model.PaymentStatusApproved || payments[0].Amount != 55 {
		t.Errorf("expected aprobado/55, got %s/%v", payments[0].Status, payments[0].Amount)
	}
	if payments[0].PaidAt == nil {
		t.Error("expected paid timestamp after approval")
	}

	if status := reloadOrder(t, db, order.ID).Status; status != model.OrderStatusConfirmed {
		t.Errorf("expected order confirmed after approval, got %s", status)
	}
}

func TestRegisterPaymentMissingOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, "PED-4-1")
	svc := newPaymentService(db, &recordingNotifier{})

	_, err := svc.RegisterPayment(context.Background(), &dto.RegisterPaymentRequest{
		PaymentID: "MP-400",
		OrderIDs:  []uint{order.ID, 9999},
		Status:    "approved",
		Amount:    100,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	var payments int64
	db.Model(&model.Payment{}).Count(&payments)
	if payments != 0 {
		t.Errorf("expected no payment rows after rollback, found %d", payments)
	}
	if status := reloadOrder(t, db, order.ID).Status; status != model.OrderStatusPending {
		t.Errorf("expected order left pendiente, got %s", status)
	}
}

func TestRegisterPaymentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db, &recordingNotifier{})

	cases := []dto.RegisterPaymentRequest{
		{PaymentID: "", OrderIDs: []uint{1}, Amount: 10},
		{PaymentID: "MP-1", OrderIDs: nil, Amount: 10},
		{PaymentID: "MP-1", OrderIDs: []uint{1}, Amount: math.NaN()},
		{PaymentID: "MP-1", OrderIDs: []uint{1}, Amount: math.Inf(1)},
	}
	for i, req := range cases {
		if _, err := svc.RegisterPayment(context.Background(), &req); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestRegisterPaymentNotificationFailureIsIgnored(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, "PED-5-1")
	svc := newPaymentService(db, &recordingNotifier{fail: true})

	_, err := svc.RegisterPayment(context.Background(), &dto.RegisterPaymentRequest{
		PaymentID: "MP-500",
		OrderIDs:  []uint{order.ID},
		Status:    "approved",
		Amount:    50,
	})
	if err != nil {
		t.Fatalf("expected notification failure to be swallowed, got %v", err)
	}

	if status := reloadOrder(t, db, order.ID).Status; status != model.OrderStatusConfirmed {
		t.Errorf("expected order confirmed despite notifier failure, got %s", status)
	}
}
