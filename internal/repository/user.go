package repository

import (
	"context"

	"aerocastle-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	ExistsTaken(ctx context.Context, username, email, dni string) (bool, error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) (int64, error)
	SetAdmin(ctx context.Context, id uint, admin bool) (int64, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepoImpl) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepoImpl) ExistsTaken(ctx context.Context, username, email, dni string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ? OR dni = ?", username, email, dni).
		Count(&count).Error

	return count > 0, err
}

// Get reads the user through the given transaction handle so workflows see a
// consistent snapshot.
func (r *userRepoImpl) Get(ctx context.Context, tx *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	err := tx.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return result.RowsAffected, result.Error
}

func (r *userRepoImpl) SetAdmin(ctx context.Context, id uint, admin bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("admin", admin)

	return result.RowsAffected, result.Error
}
