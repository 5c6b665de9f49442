package service

import (
	"context"
	"errors"
	"testing"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/repository"
)

const testJWTSecret = "secreto"

func TestRegisterConfirmLogin(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewAuthService(repository.NewUserRepository(db), notifier, testJWTSecret)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "secreta123",
		DNI:      "87654321",
		Birthday: "1995-04-12",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.UserID == 0 {
		t.Fatal("expected a user id in the response")
	}
	if len(notifier.codes) != 1 || len(notifier.codes[0]) != 6 {
		t.Fatalf("expected a 6-digit confirmation code to be sent, got %v", notifier.codes)
	}

	// login is blocked until the account is confirmed
	if _, err := svc.Login(context.Background(), "maria@example.com", "secreta123"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected login rejected before confirmation, got %v", err)
	}

	if err := svc.Confirm(context.Background(), resp.UserID, "000000x"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected wrong code rejected, got %v", err)
	}
	if err := svc.Confirm(context.Background(), resp.UserID, notifier.codes[0]); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	login, err := svc.Login(context.Background(), "maria@example.com", "secreta123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" {
		t.Error("expected a signed token")
	}
	if login.User.ID != resp.UserID || login.User.Email != "maria@example.com" {
		t.Errorf("unexpected user summary: %+v", login.User)
	}

	if _, err := svc.Login(context.Background(), "maria@example.com", "otra"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected wrong password rejected, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), &recordingNotifier{}, testJWTSecret)

	req := &dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "secreta123",
		DNI:      "87654321",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	second := *req
	second.Email = "otra@example.com"
	second.DNI = "11111111"
	if _, err := svc.Register(context.Background(), &second); !errors.Is(err, ErrConflict) {
		t.Errorf("expected conflict on taken username, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), &recordingNotifier{}, testJWTSecret)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "maria"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for missing fields, got %v", err)
	}
}

func TestRegisterNotificationFailureIsIgnored(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), &recordingNotifier{fail: true}, testJWTSecret)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "secreta123",
		DNI:      "87654321",
	}); err != nil {
		t.Fatalf("expected notification failure to be swallowed, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), &recordingNotifier{}, testJWTSecret)

	if _, err := svc.Login(context.Background(), "nadie@example.com", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
