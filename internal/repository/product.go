package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, product *model.Product) error
	CountOrderLines(ctx context.Context, productID uint) (int64, error)

	// transactional accessors used by the order workflow
	Get(ctx context.Context, tx *gorm.DB, id uint) (*model.Product, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, id uint, quantity int) (int64, error)
	IncrementStock(ctx context.Context, tx *gorm.DB, id uint, quantity int) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindAll(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Brand").
		Preload("Category").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Brand").
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error

	return count > 0, err
}

func (r *productRepoImpl) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepoImpl) Delete(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(product).Error
	})
}

func (r *productRepoImpl) CountOrderLines(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.OrderLine{}).
		Where("product_id = ?", productID).
		Count(&count).Error

	return count, err
}

func (r *productRepoImpl) Get(ctx context.Context, tx *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	err := tx.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// DecrementStock subtracts quantity in one conditional update so the stock
// count can never go negative, even under concurrent checkouts. Returns the
// number of rows changed; zero means the stock guard refused the decrement.
func (r *productRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, id uint, quantity int) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	return result.RowsAffected, result.Error
}

func (r *productRepoImpl) IncrementStock(ctx context.Context, tx *gorm.DB, id uint, quantity int) error {
	return tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity)).Error
}
