package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateLine(ctx context.Context, tx *gorm.DB, line *model.OrderLine) error
	UpdateTotal(ctx context.Context, tx *gorm.DB, orderID uint, total float64) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uint, status string) (int64, error)
	GetWithLines(ctx context.Context, tx *gorm.DB, orderID uint) (*model.Order, error)
	GetWithUser(ctx context.Context, tx *gorm.DB, orderID uint) (*model.Order, error)
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateLine(ctx context.Context, tx *gorm.DB, line *model.OrderLine) error {
	return tx.WithContext(ctx).Create(line).Error
}

func (r *orderRepoImpl) UpdateTotal(ctx context.Context, tx *gorm.DB, orderID uint, total float64) error {
	return tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("total_price", total).Error
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uint, status string) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	return result.RowsAffected, result.Error
}

func (r *orderRepoImpl) GetWithLines(ctx context.Context, tx *gorm.DB, orderID uint) (*model.Order, error) {
	var order model.Order
	err := tx.WithContext(ctx).
		Preload("Lines").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) GetWithUser(ctx context.Context, tx *gorm.DB, orderID uint) (*model.Order, error) {
	var order model.Order
	err := tx.WithContext(ctx).
		Preload("User").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Lines.Product").
		Preload("Payments").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByUser(ctx context.Context, userID uint) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Lines.Product").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Lines.Product").
		Preload("Payments").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
