package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/notify"
	"aerocastle-backend/internal/repository"

	"gorm.io/gorm"
)

type PaymentService interface {
	RegisterPayment(ctx context.Context, req *dto.RegisterPaymentRequest) (*dto.RegisterPaymentResponse, error)
	GetPayment(ctx context.Context, externalID string) (*model.Payment, error)
	ListOrderPayments(ctx context.Context, orderID uint) ([]*model.Payment, error)
}

type paymentServiceImpl struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	notifier    notify.Notifier
}

func NewPaymentService(
	db *gorm.DB,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	notifier notify.Notifier,
) PaymentService {
	return &paymentServiceImpl{
		db:          db,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
	}
}

// RegisterPayment records an externally settled payment against one or more
// orders. Re-registering the same external id updates the existing records in
// place instead of duplicating them. An approved payment transitions every
// referenced order to confirmed; the confirmation notification afterwards is
// best effort and never fails the operation.
func (s *paymentServiceImpl) RegisterPayment(ctx context.Context, req *dto.RegisterPaymentRequest) (*dto.RegisterPaymentResponse, error) {
	if req.PaymentID == "" || len(req.OrderIDs) == 0 {
		return nil, fmt.Errorf("%w: datos de pago invalidos", ErrValidation)
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, fmt.Errorf("%w: el monto no es valido", ErrValidation)
	}

	status := model.PaymentStatusPending
	if req.Status == "approved" {
		status = model.PaymentStatusApproved
	}

	var (
		orders  []*model.Order
		updated bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders = orders[:0]
		for _, orderID := range req.OrderIDs {
			order, err := s.orderRepo.GetWithUser(ctx, tx, orderID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: pedido %d", ErrNotFound, orderID)
				}
				return fmt.Errorf("load order: %w", err)
			}
			orders = append(orders, order)
		}

		existing, err := s.paymentRepo.FindByExternalID(ctx, tx, req.PaymentID)
		if err != nil {
			return fmt.Errorf("load payments: %w", err)
		}

		if len(existing) > 0 {
			updated = true
			var paidAt *time.Time
			if status == model.PaymentStatusApproved {
				now := time.Now()
				paidAt = &now
			}
			if err := s.paymentRepo.UpdateByExternalID(ctx, tx, req.PaymentID, status, req.Amount, paidAt); err != nil {
				return fmt.Errorf("update payment: %w", err)
			}
		} else {
			// split evenly across the referenced orders
			share := req.Amount / float64(len(req.OrderIDs))
			for _, order := range orders {
				payment := &model.Payment{
					ExternalID: req.PaymentID,
					OrderID:    order.ID,
					Amount:     share,
					Status:     status,
					Method:     "MercadoPago",
					UserID:     orders[0].UserID,
					TxData:     req.TxData,
				}
				if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
					return fmt.Errorf("store payment: %w", err)
				}
			}
		}

		if status == model.PaymentStatusApproved {
			for _, order := range orders {
				if _, err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusConfirmed); err != nil {
					return fmt.Errorf("confirm order %d: %w", order.ID, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == model.PaymentStatusApproved {
		if user := orders[0].User; user != nil && user.Email != "" {
			if err := s.notifier.PaymentConfirmation(ctx, user.Email, user.Username, req.Amount); err != nil {
				log.Printf("payment confirmation notification failed: %v", err)
			}
		}
	}

	message := "Pago registrado"
	if updated {
		message = "Pago actualizado"
	}

	resp := &dto.RegisterPaymentResponse{
		Success: true,
		Message: message,
		Orders:  make([]dto.OrderPaymentStatus, len(orders)),
	}
	for i, order := range orders {
		orderStatus := order.Status
		if status == model.PaymentStatusApproved {
			orderStatus = model.OrderStatusConfirmed
		}
		resp.Orders[i] = dto.OrderPaymentStatus{
			ID:     order.ID,
			Status: orderStatus,
			Number: order.Number,
		}
	}

	return resp, nil
}

func (s *paymentServiceImpl) GetPayment(ctx context.Context, externalID string) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindOne(ctx, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pago %s", ErrNotFound, externalID)
		}
		return nil, err
	}

	return payment, nil
}

func (s *paymentServiceImpl) ListOrderPayments(ctx context.Context, orderID uint) ([]*model.Payment, error) {
	return s.paymentRepo.FindByOrder(ctx, orderID)
}
