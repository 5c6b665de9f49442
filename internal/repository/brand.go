package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) error
	FindAll(ctx context.Context) ([]*model.Brand, error)
	FindByID(ctx context.Context, id uint) (*model.Brand, error)
	Update(ctx context.Context, brand *model.Brand) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type brandRepoImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepoImpl{db: db}
}

func (r *brandRepoImpl) Create(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepoImpl) FindAll(ctx context.Context) ([]*model.Brand, error) {
	var brands []*model.Brand
	err := r.db.WithContext(ctx).Order("id").Find(&brands).Error
	if err != nil {
		return nil, err
	}

	return brands, nil
}

func (r *brandRepoImpl) FindByID(ctx context.Context, id uint) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.WithContext(ctx).First(&brand, id).Error
	if err != nil {
		return nil, err
	}

	return &brand, nil
}

func (r *brandRepoImpl) Update(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Brand{}, id)
	return result.RowsAffected, result.Error
}
