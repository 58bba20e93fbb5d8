package service

import (
	"errors"
	"testing"

	"github.com/finotty/duqueLoja/internal/config"
	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"
)

func newUserAuthService(t *testing.T) (*UserAuthService, repository.UserRepository) {
	t.Helper()
	db := newTestDB(t, &models.User{})
	repo := repository.NewUserRepository(db)
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-test-secret-test-secret!"
	cfg.UserJWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewUserAuthService(cfg, repo), repo
}

func TestUserRegisterAndLogin(t *testing.T) {
	svc, _ := newUserAuthService(t)

	user, err := svc.Register(RegisterInput{
		Email:       " Ana@Example.com ",
		Password:    "Senha123",
		DisplayName: " Ana ",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.DisplayName != "Ana" {
		t.Fatalf("expected trimmed display name, got %q", user.DisplayName)
	}
	if user.Locale != constants.LocalePtBR {
		t.Fatalf("expected default locale pt-BR, got %q", user.Locale)
	}
	if user.Status != constants.UserStatusActive {
		t.Fatalf("expected active status, got %q", user.Status)
	}

	logged, token, expiresAt, err := svc.Login("ana@example.com", "Senha123", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID || token == "" || expiresAt.IsZero() {
		t.Fatalf("unexpected login result: id=%d token=%q expires=%v", logged.ID, token, expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserAuthService(t)

	if _, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "Senha123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "DUP@example.com", Password: "Senha123"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got: %v", err)
	}
}

func TestUserRegisterWeakPassword(t *testing.T) {
	svc, _ := newUserAuthService(t)

	_, err := svc.Register(RegisterInput{Email: "weak@example.com", Password: "curta"})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got: %v", err)
	}
}

func TestUserLoginWrongPassword(t *testing.T) {
	svc, _ := newUserAuthService(t)

	if _, err := svc.Register(RegisterInput{Email: "eva@example.com", Password: "Senha123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Login("eva@example.com", "Errada123", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "Senha123", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got: %v", err)
	}
}

func TestUserLoginDisabledAccount(t *testing.T) {
	svc, repo := newUserAuthService(t)

	user, err := svc.Register(RegisterInput{Email: "off@example.com", Password: "Senha123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := repo.BatchUpdateStatus([]uint{user.ID}, constants.UserStatusDisabled); err != nil {
		t.Fatalf("disable failed: %v", err)
	}

	if _, _, _, err := svc.Login("off@example.com", "Senha123", false); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got: %v", err)
	}
}
