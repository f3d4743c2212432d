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

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	applyFn    func(ctx context.Context, input ports.VolunteerApplicationInput) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) ApplyForVolunteer(ctx context.Context, input ports.VolunteerApplicationInput) (*domain.User, error) {
	return s.applyFn(ctx, input)
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

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "alice@example.com" || input.FullName != "Alice" || input.Phone != "123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Email: input.Email, Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub, false)

	c, rec := newTestContext(t, http.MethodPost, "/users/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret","phone":"123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailExists
		},
	}
	h := NewUserHandler(stub, false)

	c, _ := newTestContext(t, http.MethodPost, "/users/register",
		`{"email":"bob@example.com","password":"secret"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub, false)

	c, _ := newTestContext(t, http.MethodPost, "/users/register", `{"email":"no-password@example.com"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Login_ScrubsPasswordHash(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "fake-jwt-token-u1", &domain.User{
				ID:           "u1",
				Email:        email,
				PasswordHash: "$2a$10$digest",
				Role:         domain.RoleUser,
			}, nil
		},
	}
	h := NewUserHandler(stub, false)

	c, rec := newTestContext(t, http.MethodPost, "/users/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "fake-jwt-token-u1" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if strings.Contains(rec.Body.String(), "digest") {
		t.Fatalf("password digest leaked in login response: %s", rec.Body.String())
	}
}

func TestUserHandler_Login_LegacyPayloadIncludesDigest(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "tok", &domain.User{ID: "u1", Email: email, PasswordHash: "$2a$10$digest"}, nil
		},
	}
	h := NewUserHandler(stub, true)

	c, rec := newTestContext(t, http.MethodPost, "/users/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "digest") {
		t.Fatalf("legacy payload must include the digest: %s", rec.Body.String())
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(stub, false)

	c, _ := newTestContext(t, http.MethodPost, "/users/login",
		`{"email":"alice@example.com","password":"bad"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_Apply_Success(t *testing.T) {
	stub := &stubUserService{
		applyFn: func(_ context.Context, input ports.VolunteerApplicationInput) (*domain.User, error) {
			if input.UserID != "u1" || input.Role != "Dog Walker" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", IsVolunteer: true}, nil
		},
	}
	h := NewUserHandler(stub, false)

	c, rec := newTestContext(t, http.MethodPost, "/volunteers/apply",
		`{"userId":"u1","role":"Dog Walker","experience":"2 years","availability":"weekends"}`)

	if err := h.ApplyForVolunteer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Application submitted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Apply_NoAccount(t *testing.T) {
	stub := &stubUserService{
		applyFn: func(_ context.Context, _ ports.VolunteerApplicationInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub, false)

	c, _ := newTestContext(t, http.MethodPost, "/volunteers/apply",
		`{"email":"ghost@example.com","role":"Dog Walker"}`)

	err := h.ApplyForVolunteer(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
