package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopforge/commerce-api/internal/core/domain"
	"github.com/shopforge/commerce-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (string, *domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
			if in.Email != "a@b.com" || in.Role != domain.RoleMerchant || in.FirstName != "A" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "signed-token", &domain.User{ID: "u1", Email: in.Email, Role: in.Role}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@b.com","password":"secret1","role":"MERCHANT","firstname":"A","lastname":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	if resp["message"] != "Signup successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Signup_ValidationFailures(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return "", nil, nil
		},
	})

	cases := map[string]string{
		"bad email":      `{"email":"not-an-email","password":"secret1","role":"MERCHANT","firstname":"A","lastname":"B"}`,
		"short password": `{"email":"a@b.com","password":"four","role":"MERCHANT","firstname":"A","lastname":"B"}`,
		"unknown role":   `{"email":"a@b.com","password":"secret1","role":"ADMIN","firstname":"A","lastname":"B"}`,
		"missing name":   `{"email":"a@b.com","password":"secret1","role":"MERCHANT"}`,
	}

	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Signup(c)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 HTTPError, got %v", name, err)
		}
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	})

	body := strings.NewReader(`{"email":"a@b.com","password":"secret1","role":"MERCHANT","firstname":"A","lastname":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signup(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@b.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: "u1", Email: email}, nil
		},
	})

	body := strings.NewReader(`{"email":"a@b.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Login_BadPassword(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidPassword
		},
	})

	body := strings.NewReader(`{"email":"a@b.com","password":"wrong-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != domain.ErrInvalidPassword {
		t.Fatalf("expected ErrInvalidPassword to propagate, got %v", err)
	}
}
