package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/internal/auth"
	"github.com/angelmondragon/storefront-backend/internal/users"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

type stubAuthService struct {
	signup      *auth.SignupResult
	login       *auth.LoginResult
	refresh     *auth.RefreshResult
	profile     *auth.ProfileResult
	err         error
	gotRefresh  string
	gotLogout   uuid.UUID
	signupCalls int
}

func (s *stubAuthService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.SignupResult, error) {
	s.signupCalls++
	return s.signup, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResult, error) {
	return s.login, s.err
}

func (s *stubAuthService) Refresh(ctx context.Context, token string) (*auth.RefreshResult, error) {
	s.gotRefresh = token
	if token == "" {
		return nil, auth.ErrRefreshTokenMissing
	}
	return s.refresh, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	s.gotLogout = userID
	return s.err
}

func (s *stubAuthService) Profile(ctx context.Context, userID uuid.UUID) (*auth.ProfileResult, error) {
	return s.profile, s.err
}

func testUser() *users.UserDTO {
	return &users.UserDTO{ID: uuid.New(), Name: "Jane Doe", Email: "jane@example.com", CreatedAt: time.Now().UTC()}
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthSignupCreated(t *testing.T) {
	svc := &stubAuthService{signup: &auth.SignupResult{Message: "User created successfully", User: testUser()}}
	handler := AuthSignup(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Message string         `json:"message"`
		User    *users.UserDTO `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "User created successfully" || body.User == nil || body.User.Email != "jane@example.com" {
		t.Fatalf("unexpected body %+v", body)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password leaked in response: %s", rec.Body.String())
	}
}

func TestAuthSignupValidation(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthSignup(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"name":"J","email":"nope","password":"123"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Validation failed" || len(body.Details) != 3 {
		t.Fatalf("unexpected validation body %+v", body)
	}
	if svc.signupCalls != 0 {
		t.Fatalf("service should not be called on invalid input")
	}
}

func TestAuthSignupConflict(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "User already exists")}
	rec := httptest.NewRecorder()
	AuthSignup(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"name":"Jane","email":"jane@example.com","password":"secret1"}`)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}

func TestAuthLoginSetsRefreshCookie(t *testing.T) {
	svc := &stubAuthService{login: &auth.LoginResult{AccessToken: "access", RefreshToken: "opaque-refresh", User: testUser()}}
	cookie := RefreshCookie{TTL: 7 * 24 * time.Hour, Secure: true}
	handler := AuthLogin(svc, cookie, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	c := cookieByName(rec, refreshCookieName)
	if c == nil {
		t.Fatalf("expected refresh cookie")
	}
	if c.Value != "opaque-refresh" || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteStrictMode || c.Path != "/api/auth" {
		t.Fatalf("unexpected cookie %+v", c)
	}
	if c.MaxAge != 7*24*60*60 {
		t.Fatalf("expected 7 day max-age got %d", c.MaxAge)
	}
	if strings.Contains(rec.Body.String(), "opaque-refresh") {
		t.Fatalf("refresh token must not appear in the body")
	}
	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.AccessToken != "access" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")}
	rec := httptest.NewRecorder()
	AuthLogin(svc, RefreshCookie{TTL: time.Hour}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"wrong"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if cookieByName(rec, refreshCookieName) != nil {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthRefreshReadsCookie(t *testing.T) {
	svc := &stubAuthService{refresh: &auth.RefreshResult{AccessToken: "fresh", RefreshToken: "rotated"}}
	handler := AuthRefresh(svc, RefreshCookie{TTL: time.Hour}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "opaque"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotRefresh != "opaque" {
		t.Fatalf("expected cookie value passed through, got %q", svc.gotRefresh)
	}
	c := cookieByName(rec, refreshCookieName)
	if c == nil || c.Value != "rotated" || c.Path != "/api/auth" || !c.HttpOnly {
		t.Fatalf("expected rotated refresh cookie, got %+v", c)
	}
	if strings.Contains(rec.Body.String(), "rotated") {
		t.Fatalf("refresh token must not appear in the body")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Refresh token required") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestAuthLogoutClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	userID := uuid.New()
	handler := AuthLogout(svc, RefreshCookie{TTL: time.Hour}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotLogout != userID {
		t.Fatalf("expected logout for %s got %s", userID, svc.gotLogout)
	}
	c := cookieByName(rec, refreshCookieName)
	if c == nil || c.MaxAge >= 0 {
		t.Fatalf("expected expired refresh cookie, got %+v", c)
	}
	if !strings.Contains(rec.Body.String(), "Logged out successfully") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestAuthProfileRequiresUser(t *testing.T) {
	svc := &stubAuthService{profile: &auth.ProfileResult{User: testUser()}}
	rec := httptest.NewRecorder()
	AuthProfile(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	rec = httptest.NewRecorder()
	AuthProfile(svc, nil).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
