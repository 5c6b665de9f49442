package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindAll(ctx context.Context) ([]*model.Supplier, error)
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type supplierRepoImpl struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepoImpl{db: db}
}

func (r *supplierRepoImpl) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepoImpl) FindAll(ctx context.Context) ([]*model.Supplier, error) {
	var suppliers []*model.Supplier
	err := r.db.WithContext(ctx).Order("id").Find(&suppliers).Error
	if err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (r *supplierRepoImpl) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.WithContext(ctx).First(&supplier, id).Error
	if err != nil {
		return nil, err
	}

	return &supplier, nil
}

func (r *supplierRepoImpl) Update(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *supplierRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	return result.RowsAffected, result.Error
}
