package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	cartsvc "github.com/angelmondragon/storefront-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

type call struct {
	method   string
	identity cartsvc.Identity
	itemID   uuid.UUID
	quantity int
	guestID  *uuid.UUID
}

type stubCartService struct {
	calls []call
	err   error
	merge *cartsvc.MergeResult
}

func (s *stubCartService) record(c call) {
	s.calls = append(s.calls, c)
}

func (s *stubCartService) Get(ctx context.Context, identity cartsvc.Identity) (*cartsvc.CartDTO, error) {
	s.record(call{method: "get", identity: identity})
	return cartsvc.EmptyCart(), s.err
}

func (s *stubCartService) Add(ctx context.Context, identity cartsvc.Identity, itemID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	s.record(call{method: "add", identity: identity, itemID: itemID, quantity: quantity})
	if s.err != nil {
		return nil, s.err
	}
	return cartsvc.EmptyCart(), nil
}

func (s *stubCartService) Update(ctx context.Context, identity cartsvc.Identity, itemID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	s.record(call{method: "update", identity: identity, itemID: itemID, quantity: quantity})
	if quantity == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Use DELETE endpoint to remove items")
	}
	if s.err != nil {
		return nil, s.err
	}
	return cartsvc.EmptyCart(), nil
}

func (s *stubCartService) Remove(ctx context.Context, identity cartsvc.Identity, itemID uuid.UUID) error {
	s.record(call{method: "remove", identity: identity, itemID: itemID})
	return s.err
}

func (s *stubCartService) Clear(ctx context.Context, identity cartsvc.Identity) (*cartsvc.CartDTO, error) {
	s.record(call{method: "clear", identity: identity})
	return cartsvc.EmptyCart(), s.err
}

func (s *stubCartService) Merge(ctx context.Context, userID uuid.UUID, guestID *uuid.UUID) (*cartsvc.MergeResult, error) {
	s.record(call{method: "merge", identity: cartsvc.Identity{UserID: userID}, guestID: guestID})
	if s.err != nil {
		return nil, s.err
	}
	return s.merge, nil
}

func withGuest(r *http.Request, guestID uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithGuestID(r.Context(), guestID))
}

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}

func TestCartFetchPrefersUserIdentity(t *testing.T) {
	svc := &stubCartService{}
	userID, guestID := uuid.New(), uuid.New()

	req := withUser(withGuest(httptest.NewRequest(http.MethodGet, "/api/cart", nil), guestID), userID)
	rec := httptest.NewRecorder()
	CartFetch(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if got := svc.calls[0].identity; got.UserID != userID || got.GuestID != uuid.Nil {
		t.Fatalf("expected user identity, got %+v", got)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCartAdd(t *testing.T) {
	svc := &stubCartService{}
	guestID, itemID := uuid.New(), uuid.New()

	req := withGuest(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"itemId":"`+itemID.String()+`","quantity":2}`)), guestID)
	rec := httptest.NewRecorder()
	CartAdd(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	got := svc.calls[0]
	if got.identity.GuestID != guestID || got.itemID != itemID || got.quantity != 2 {
		t.Fatalf("unexpected call %+v", got)
	}
	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || !body.Success {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCartAddValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero quantity", `{"itemId":"` + uuid.NewString() + `","quantity":0}`},
		{"too many", `{"itemId":"` + uuid.NewString() + `","quantity":100}`},
		{"bad id", `{"itemId":"abc","quantity":1}`},
		{"unknown field", `{"itemId":"` + uuid.NewString() + `","quantity":1,"price":0}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		svc := &stubCartService{}
		rec := httptest.NewRecorder()
		CartAdd(svc, nil).ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(tt.body)), uuid.New()))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", tt.name, rec.Code)
		}
		if len(svc.calls) != 0 {
			t.Fatalf("%s: service should not be called", tt.name)
		}
	}
}

func TestCartAddSurfacesServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{pkgerrors.New(pkgerrors.CodeNotFound, "Item not found"), http.StatusNotFound},
		{pkgerrors.New(pkgerrors.CodeInsufficientStock, "Insufficient stock"), http.StatusBadRequest},
		{pkgerrors.New(pkgerrors.CodeConflict, "Cart was modified concurrently, please retry"), http.StatusConflict},
	}
	for _, tt := range tests {
		svc := &stubCartService{err: tt.err}
		rec := httptest.NewRecorder()
		CartAdd(svc, nil).ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"itemId":"`+uuid.NewString()+`","quantity":1}`)), uuid.New()))
		if rec.Code != tt.want {
			t.Fatalf("%v: expected %d got %d", tt.err, tt.want, rec.Code)
		}
	}
}

func TestCartUpdateZeroQuantityPointsAtDelete(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()
	CartUpdate(svc, nil).ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodPut, "/api/cart", strings.NewReader(`{"itemId":"`+uuid.NewString()+`","quantity":0}`)), uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Use DELETE endpoint to remove items") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCartUpdateValidatesNonZeroQuantity(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()
	CartUpdate(svc, nil).ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodPut, "/api/cart", strings.NewReader(`{"itemId":"`+uuid.NewString()+`","quantity":150}`)), uuid.New()))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if len(svc.calls) != 0 {
		t.Fatalf("service should not be called")
	}
	if !strings.Contains(rec.Body.String(), "Validation failed") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCartRemove(t *testing.T) {
	svc := &stubCartService{}
	guestID, itemID := uuid.New(), uuid.New()

	r := chi.NewRouter()
	r.Delete("/api/cart/{itemId}", CartRemove(svc, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodDelete, "/api/cart/"+itemID.String(), nil), guestID))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"success":true}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if svc.calls[0].itemID != itemID {
		t.Fatalf("expected item %s got %s", itemID, svc.calls[0].itemID)
	}

}

func TestCartRemoveUnknownIDFormatSucceeds(t *testing.T) {
	svc := &stubCartService{}
	r := chi.NewRouter()
	r.Delete("/api/cart/{itemId}", CartRemove(svc, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodDelete, "/api/cart/legacy-sku-42", nil), uuid.New()))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.TrimSpace(rec.Body.String()) != `{"success":true}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if len(svc.calls) != 0 {
		t.Fatalf("service should not be called, got %+v", svc.calls)
	}
}

func TestCartClear(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()
	CartClear(svc, nil).ServeHTTP(rec, withGuest(httptest.NewRequest(http.MethodDelete, "/api/cart", nil), uuid.New()))
	if rec.Code != http.StatusOK || svc.calls[0].method != "clear" {
		t.Fatalf("unexpected result %d %+v", rec.Code, svc.calls)
	}
}

func TestCartMergeClearsGuestCookie(t *testing.T) {
	userID, guestID := uuid.New(), uuid.New()
	svc := &stubCartService{merge: &cartsvc.MergeResult{Success: true, Message: "Cart merged successfully", ClearGuest: true}}

	req := withUser(withGuest(httptest.NewRequest(http.MethodPost, "/api/cart/merge", nil), guestID), userID)
	rec := httptest.NewRecorder()
	CartMerge(svc, true, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	got := svc.calls[0]
	if got.identity.UserID != userID || got.guestID == nil || *got.guestID != guestID {
		t.Fatalf("unexpected merge call %+v", got)
	}
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.GuestCookieName && c.MaxAge < 0 && c.Secure {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected guest cookie cleared")
	}
	if strings.Contains(rec.Body.String(), "ClearGuest") || strings.Contains(rec.Body.String(), "clearGuest") {
		t.Fatalf("internal flag leaked: %s", rec.Body.String())
	}
}

func TestCartMergeWithoutGuestKeepsCookies(t *testing.T) {
	svc := &stubCartService{merge: &cartsvc.MergeResult{Success: true, Message: "No guest cart to merge"}}
	rec := httptest.NewRecorder()
	CartMerge(svc, false, nil).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/cart/merge", nil), uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no cookies, got %v", rec.Result().Cookies())
	}
	if svc.calls[0].guestID != nil {
		t.Fatalf("expected nil guest id")
	}
}
