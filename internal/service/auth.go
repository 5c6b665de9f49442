package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/model"
	"aerocastle-backend/internal/notify"
	"aerocastle-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Confirm(ctx context.Context, userID uint, code string) error
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	notifier  notify.Notifier
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepository, notifier notify.Notifier, jwtSecret string) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.DNI == "" {
		return nil, fmt.Errorf("%w: faltan datos de registro", ErrValidation)
	}

	taken, err := s.userRepo.ExistsTaken(ctx, req.Username, req.Email, req.DNI)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: el usuario, email o DNI ya estan registrados", ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	user := &model.User{
		Username:         req.Username,
		Email:            req.Email,
		Password:         string(hashed),
		DNI:              req.DNI,
		Phone:            req.Phone,
		ConfirmationCode: &code,
	}
	if req.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", req.Birthday); err == nil {
			user.Birthday = &birthday
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	if err := s.notifier.ConfirmationCode(ctx, user.Email, user.Username, code); err != nil {
		log.Printf("confirmation code notification failed: %v", err)
	}

	return &dto.RegisterResponse{
		Message: "Usuario registrado. Por favor revisa tu email para el codigo de confirmacion.",
		UserID:  user.ID,
	}, nil
}

func (s *authServiceImpl) Confirm(ctx context.Context, userID uint, code string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
		}
		return err
	}

	if user.ConfirmationCode == nil || *user.ConfirmationCode != code {
		return fmt.Errorf("%w: codigo de confirmacion invalido", ErrValidation)
	}

	user.Confirmed = true
	user.ConfirmationCode = nil

	return s.userRepo.Update(ctx, user)
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: usuario no encontrado", ErrNotFound)
		}
		return nil, err
	}

	if !user.Confirmed {
		return nil, fmt.Errorf("%w: confirma tu cuenta antes de iniciar sesion", ErrValidation)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: credenciales incorrectas", ErrValidation)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"admin": user.Admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token: signed,
		User: dto.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Admin:    user.Admin,
		},
	}, nil
}
