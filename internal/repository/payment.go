package repository

import (
	"context"
	"time"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error
	FindByExternalID(ctx context.Context, tx *gorm.DB, externalID string) ([]*model.Payment, error)
	UpdateByExternalID(ctx context.Context, tx *gorm.DB, externalID, status string, amount float64, paidAt *time.Time) error
	FindOne(ctx context.Context, externalID string) (*model.Payment, error)
	FindByOrder(ctx context.Context, orderID uint) ([]*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{db: db}
}

func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByExternalID(ctx context.Context, tx *gorm.DB, externalID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := tx.WithContext(ctx).
		Where("external_id = ?", externalID).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepoImpl) UpdateByExternalID(ctx context.Context, tx *gorm.DB, externalID, status string, amount float64, paidAt *time.Time) error {
	updates := map[string]interface{}{
		"status": status,
		"amount": amount,
	}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}

	return tx.WithContext(ctx).Model(&model.Payment{}).
		Where("external_id = ?", externalID).
		Updates(updates).Error
}

func (r *paymentRepoImpl) FindOne(ctx context.Context, externalID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Preload("Order.Lines").
		Where("external_id = ?", externalID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) FindByOrder(ctx context.Context, orderID uint) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("paid_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}
