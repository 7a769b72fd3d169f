package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{token: "signed-token"})

	c, rec := newLoginContext(e, `{"username":"admin","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["accessToken"] != "signed-token" {
		t.Fatalf("unexpected accessToken: %q", resp["accessToken"])
	}
	if resp["tokenType"] != "Bearer" {
		t.Fatalf("expected tokenType Bearer, got %q", resp["tokenType"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newLoginContext(e, `{"username":"admin","password":"wrongpass"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{token: "never"})

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"x"}`} {
		c, _ := newLoginContext(e, body)
		err := h.Login(c)
		if err == nil {
			t.Fatalf("expected validation error for %s", body)
		}
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{token: "never"})

	c, _ := newLoginContext(e, `{not json`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
