package service

import (
	"context"
	"fmt"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/repository"
)

// EngagementService groups the review and wish-list pass-throughs.
type EngagementService interface {
	ListProductReviews(ctx context.Context, productID uint) ([]*model.Review, error)
	CreateReview(ctx context.Context, req *dto.ReviewRequest) (*model.Review, error)
	ApproveReview(ctx context.Context, id uint) error
	DeleteReview(ctx context.Context, id uint) error

	ListWishlist(ctx context.Context, userID uint) ([]*model.WishlistItem, error)
	AddToWishlist(ctx context.Context, req *dto.WishlistRequest) error
	RemoveFromWishlist(ctx context.Context, id uint) error
}

type engagementServiceImpl struct {
	reviewRepo   repository.ReviewRepository
	wishlistRepo repository.WishlistRepository
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
}

func NewEngagementService(
	reviewRepo repository.ReviewRepository,
	wishlistRepo repository.WishlistRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) EngagementService {
	return &engagementServiceImpl{
		reviewRepo:   reviewRepo,
		wishlistRepo: wishlistRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
	}
}

func (s *engagementServiceImpl) checkRefs(ctx context.Context, userID, productID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return fmt.Errorf("%w: producto %d", ErrNotFound, productID)
	}

	return nil
}

func (s *engagementServiceImpl) ListProductReviews(ctx context.Context, productID uint) ([]*model.Review, error) {
	return s.reviewRepo.FindByProduct(ctx, productID)
}

func (s *engagementServiceImpl) CreateReview(ctx context.Context, req *dto.ReviewRequest) (*model.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: la calificacion debe estar entre 1 y 5", ErrValidation)
	}
	if err := s.checkRefs(ctx, req.UserID, req.ProductID); err != nil {
		return nil, err
	}

	review := &model.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *engagementServiceImpl) ApproveReview(ctx context.Context, id uint) error {
	rows, err := s.reviewRepo.Approve(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: resena %d", ErrNotFound, id)
	}

	return nil
}

func (s *engagementServiceImpl) DeleteReview(ctx context.Context, id uint) error {
	rows, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: resena %d", ErrNotFound, id)
	}

	return nil
}

func (s *engagementServiceImpl) ListWishlist(ctx context.Context, userID uint) ([]*model.WishlistItem, error) {
	return s.wishlistRepo.FindByUser(ctx, userID)
}

func (s *engagementServiceImpl) AddToWishlist(ctx context.Context, req *dto.WishlistRequest) error {
	if err := s.checkRefs(ctx, req.UserID, req.ProductID); err != nil {
		return err
	}

	return s.wishlistRepo.Add(ctx, &model.WishlistItem{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
}

func (s *engagementServiceImpl) RemoveFromWishlist(ctx context.Context, id uint) error {
	rows, err := s.wishlistRepo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: elemento %d", ErrNotFound, id)
	}

	return nil
}
