package service

import (
	"context"
	"errors"
	"fmt"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
	SetAdmin(ctx context.Context, id uint, admin bool) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, id)
		}
		return nil, err
	}

	return user, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.ShippingAddress != "" {
		user.ShippingAddress = req.ShippingAddress
	}
	if req.BillingAddress != "" {
		user.BillingAddress = req.BillingAddress
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	rows, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: usuario %d", ErrNotFound, id)
	}

	return nil
}

func (s *userServiceImpl) SetAdmin(ctx context.Context, id uint, admin bool) error {
	rows, err := s.userRepo.SetAdmin(ctx, id, admin)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: usuario %d", ErrNotFound, id)
	}

	return nil
}
