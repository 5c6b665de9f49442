package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByProduct(ctx context.Context, productID uint) ([]*model.Review, error)
	Approve(ctx context.Context, id uint) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{db: db}
}

func (r *reviewRepoImpl) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepoImpl) FindByProduct(ctx context.Context, productID uint) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepoImpl) Approve(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", id).
		Update("approved", true)

	return result.RowsAffected, result.Error
}

func (r *reviewRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Review{}, id)
	return result.RowsAffected, result.Error
}
