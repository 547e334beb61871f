package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/auth"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "storefront-test", AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour}
}

type stubUsers struct {
	known map[uuid.UUID]bool
	err   error
}

func (s stubUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.User{ID: id}, nil
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, now time.Time, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.MintAccessToken(cfg, now, userID)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestRequireAuthRejections(t *testing.T) {
	cfg := testJWTConfig()
	known := uuid.New()
	users := stubUsers{known: map[uuid.UUID]bool{known: true}}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "Missing or invalid token format"},
		{"wrong scheme", "Basic abc", "Missing or invalid token format"},
		{"empty bearer", "Bearer ", "Missing or invalid token format"},
		{"garbage token", "Bearer invalid", "Invalid token"},
		{"expired", "Bearer " + mintTestToken(t, cfg, time.Now().Add(-time.Hour), known), "Token expired"},
		{"deleted user", "Bearer " + mintTestToken(t, cfg, time.Now(), uuid.New()), "User not found"},
	}

	for _, tt := range tests {
		handler := RequireAuth(cfg, users, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("%s: handler should not run", tt.name)
		}))
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", tt.name, rec.Code)
		}
		if msg := errorMessage(t, rec); msg != tt.want {
			t.Fatalf("%s: expected %q got %q", tt.name, tt.want, msg)
		}
	}
}

func TestRequireAuthRejectsForeignSecret(t *testing.T) {
	cfg := testJWTConfig()
	other := cfg
	other.Secret = "other-secret"
	userID := uuid.New()

	handler := RequireAuth(cfg, stubUsers{known: map[uuid.UUID]bool{userID: true}}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, other, time.Now(), userID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRequireAuthAllowsValidToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	var captured uuid.UUID
	handler := RequireAuth(cfg, stubUsers{known: map[uuid.UUID]bool{userID: true}}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+mintTestToken(t, cfg, time.Now(), userID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if captured != userID {
		t.Fatalf("expected user %s in context got %s", userID, captured)
	}
}

func TestRequireAuthLookupFailureIsDependencyError(t *testing.T) {
	cfg := testJWTConfig()
	handler := RequireAuth(cfg, stubUsers{err: errors.New("db down")}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, time.Now(), uuid.New()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
}

func TestOptionalAuthIgnoresFailures(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	users := stubUsers{known: map[uuid.UUID]bool{userID: true}}

	tests := []struct {
		name     string
		header   string
		wantUser bool
	}{
		{"anonymous", "", false},
		{"garbage", "Bearer nope", false},
		{"expired", "Bearer " + mintTestToken(t, cfg, time.Now().Add(-time.Hour), userID), false},
		{"unknown user", "Bearer " + mintTestToken(t, cfg, time.Now(), uuid.New()), false},
		{"valid", "Bearer " + mintTestToken(t, cfg, time.Now(), userID), true},
	}

	for _, tt := range tests {
		var got bool
		handler := OptionalAuth(cfg, users, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, got = UserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", tt.name, rec.Code)
		}
		if got != tt.wantUser {
			t.Fatalf("%s: expected user=%v got %v", tt.name, tt.wantUser, got)
		}
	}
}
