package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starke/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	loginFunc  func(ctx context.Context, email, password string) (string, error)
	logoutFunc func(ctx context.Context, token string) error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return "", service.ErrInvalidCredentials
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return nil
}

// ---------------------------------------------------------------------------
// POST /api/login tests
// ---------------------------------------------------------------------------

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "tok123", nil
		},
	}
	h := NewAuthHandler(mock)

	body := `{"email":"admin@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["token"] != "tok123" {
		t.Errorf("expected token=tok123, got %q", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	body := `{"email":"admin@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Invalid credentials" {
		t.Errorf("expected generic error message, got %q", resp["error"])
	}
}

// TestAuthHandler_Login_MalformedBody verifies a bad body fails like empty
// credentials would, not with a separate error shape.
func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	var gotEmail, gotPassword string
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			gotEmail, gotPassword = email, password
			return "", service.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{garbage"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for malformed body, got %d", rec.Code)
	}
	if gotEmail != "" || gotPassword != "" {
		t.Errorf("expected empty credentials forwarded, got %q / %q", gotEmail, gotPassword)
	}
}

func TestAuthHandler_Login_ServiceFailure(t *testing.T) {
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "", errors.New("redis down")
		},
	}
	h := NewAuthHandler(mock)

	body := `{"email":"admin@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on store failure, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/logout tests
// ---------------------------------------------------------------------------

func TestAuthHandler_Logout_RevokesBearerToken(t *testing.T) {
	var revoked string
	mock := &mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	h := NewAuthHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "tok123" {
		t.Errorf("expected tok123 revoked, got %q", revoked)
	}
	var resp map[string]bool
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp["success"] {
		t.Error("expected success=true")
	}
}

// TestAuthHandler_Logout_NoHeader verifies logout is a 200 even without any
// token, and that nothing is revoked.
func TestAuthHandler_Logout_NoHeader(t *testing.T) {
	logoutCalled := false
	mock := &mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			logoutCalled = true
			return nil
		},
	}
	h := NewAuthHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 without a token, got %d", rec.Code)
	}
	if logoutCalled {
		t.Error("expected no revoke without a token")
	}
}

func TestAuthHandler_Logout_StoreErrorStill200(t *testing.T) {
	mock := &mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			return errors.New("redis down")
		},
	}
	h := NewAuthHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected logout to stay 200 on store error, got %d", rec.Code)
	}
}
