package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	CancelOrder(ctx context.Context, orderID uint) error
	ConfirmOrder(ctx context.Context, orderID uint) error
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	ListUserOrders(ctx context.Context, userID uint) ([]*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// generateOrderNumber builds a unique order number from the current time plus
// a random suffix, e.g. PED-1714502400123-381.
func generateOrderNumber() string {
	return fmt.Sprintf("PED-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// CreateOrder runs the whole checkout in one transaction: the user must
// exist, every line must have enough stock, stock is decremented per line and
// the order total is the sum of line subtotals. Any failure rolls back every
// write of the attempt.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if len(req.Products) == 0 {
		return nil, fmt.Errorf("%w: el pedido debe contener productos", ErrValidation)
	}
	for _, item := range req.Products {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser positiva", ErrValidation)
		}
	}

	order := &model.Order{
		Number: generateOrderNumber(),
		Status: model.OrderStatusPending,
		UserID: req.UserID,
	}
	details := make([]dto.OrderLineDetail, 0, len(req.Products))
	totalPrice := 0.0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.Get(ctx, tx, req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: el usuario %d no existe", ErrNotFound, req.UserID)
			}
			return fmt.Errorf("load user: %w", err)
		}

		order.ShippingAddress = user.ShippingAddress
		order.BillingAddress = user.BillingAddress
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		for _, item := range req.Products {
			// re-read per line so a duplicated product id in the same
			// request sees the stock left by earlier lines
			product, err := s.productRepo.Get(ctx, tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: el producto %d no existe", ErrNotFound, item.ProductID)
				}
				return fmt.Errorf("load product: %w", err)
			}

			if product.Stock < item.Quantity {
				return fmt.Errorf("%w: stock insuficiente para el producto %s", ErrConflict, product.Name)
			}
			if math.IsNaN(product.Price) || math.IsInf(product.Price, 0) {
				return fmt.Errorf("%w: el precio del producto %s no es valido", ErrValidation, product.Name)
			}

			rows, err := s.productRepo.DecrementStock(ctx, tx, product.ID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if rows == 0 {
				return fmt.Errorf("%w: stock insuficiente para el producto %s", ErrConflict, product.Name)
			}

			subtotal := product.Price * float64(item.Quantity)
			line := &model.OrderLine{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			}
			if err := s.orderRepo.CreateLine(ctx, tx, line); err != nil {
				return fmt.Errorf("store order line: %w", err)
			}

			totalPrice += subtotal
			details = append(details, dto.OrderLineDetail{
				ID:        line.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		return s.orderRepo.UpdateTotal(ctx, tx, order.ID, totalPrice)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		Message: "Pedido creado exitosamente",
		Details: details,
		OrderID: order.ID,
		Number:  order.Number,
		Total:   totalPrice,
	}, nil
}

// CancelOrder restores every line's quantity back onto product stock, unless
// the order is already cancelled, then marks the order cancelled. Restoring
// only behind the status guard keeps a double cancel from restocking twice.
func (s *orderServiceImpl) CancelOrder(ctx context.Context, orderID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.GetWithLines(ctx, tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: pedido %d", ErrNotFound, orderID)
			}
			return fmt.Errorf("load order: %w", err)
		}

		if order.Status != model.OrderStatusCancelled {
			for _, line := range order.Lines {
				if err := s.productRepo.IncrementStock(ctx, tx, line.ProductID, line.Quantity); err != nil {
					return fmt.Errorf("restore stock: %w", err)
				}
			}
		}

		_, err = s.orderRepo.UpdateStatus(ctx, tx, orderID, model.OrderStatusCancelled)
		return err
	})
}

// ConfirmOrder is the manual path: a plain status overwrite with no stock or
// payment side effects.
func (s *orderServiceImpl) ConfirmOrder(ctx context.Context, orderID uint) error {
	rows, err := s.orderRepo.UpdateStatus(ctx, s.db, orderID, model.OrderStatusConfirmed)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: pedido %d", ErrNotFound, orderID)
	}

	return nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pedido %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) ListUserOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}
