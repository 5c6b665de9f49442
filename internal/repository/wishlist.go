package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository interface {
	Add(ctx context.Context, item *model.WishlistItem) error
	FindByUser(ctx context.Context, userID uint) ([]*model.WishlistItem, error)
	Remove(ctx context.Context, id uint) (int64, error)
}

type wishlistRepoImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepoImpl{db: db}
}

// Add is idempotent on the (user, product) pair.
func (r *wishlistRepoImpl) Add(ctx context.Context, item *model.WishlistItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item).Error
}

func (r *wishlistRepoImpl) FindByUser(ctx context.Context, userID uint) ([]*model.WishlistItem, error) {
	var items []*model.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *wishlistRepoImpl) Remove(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.WishlistItem{}, id)
	return result.RowsAffected, result.Error
}
