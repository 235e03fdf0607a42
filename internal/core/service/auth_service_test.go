package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/solestore/storefront-api/internal/core/domain"
)

const testJWTSecret = "test-secret"

func TestRegister_AlwaysUserRole(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	user, err := svc.Register(context.Background(), "alice@example.com", "s3cret", "Alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleUser)
	}
	if user.ID == 0 {
		t.Errorf("expected assigned id")
	}
	if user.PasswordHash == "s3cret" {
		t.Errorf("password stored in plain text")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	if _, err := svc.Register(context.Background(), "alice@example.com", "s3cret", "Alice"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "alice@example.com", "other", "Alice Again")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testJWTSecret, time.Hour)

	if _, err := svc.Register(context.Background(), "", "s3cret", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_ReturnsSignedToken(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	registered, err := svc.Register(context.Background(), "alice@example.com", "s3cret", "Alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("user email = %q", user.Email)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if sub, _ := claims["sub"].(float64); uint(sub) != registered.ID {
		t.Errorf("sub claim = %v, want %d", claims["sub"], registered.ID)
	}
	if claims["role"] != domain.RoleUser {
		t.Errorf("role claim = %v, want %q", claims["role"], domain.RoleUser)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	if _, err := svc.Register(context.Background(), "alice@example.com", "s3cret", "Alice"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testJWTSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
