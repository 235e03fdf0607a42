package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/solestore/storefront-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(email, password, name string) (*domain.User, error)
	loginFn    func(email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(_ context.Context, email, password, name string) (*domain.User, error) {
	return s.registerFn(email, password, name)
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(email, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Created(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(email, _, name string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, Name: name, Role: domain.RoleUser}, nil
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"s3cret","name":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.User == nil || resp.User.Email != "alice@example.com" || resp.User.Role != domain.RoleUser {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"s3cret"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestRegister_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(string, string, string) (*domain.User, error) {
			t.Fatal("service should not be called on invalid payload")
			return nil, nil
		},
	})

	cases := []string{
		`{"email":"not-an-email","password":"s3cret"}`,
		`{"email":"alice@example.com","password":"123"}`,
		`{"password":"s3cret"}`,
	}
	for _, body := range cases {
		c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)
		if err := h.Register(c); err != nil {
			t.Fatalf("Register(%s): %v", body, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(email, _ string) (string, *domain.User, error) {
			return "jwt-token", &domain.User{ID: 1, Email: email}, nil
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"s3cret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Errorf("token = %q", resp.Token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})
	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
