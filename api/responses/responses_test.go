package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body
}

func TestWriteSuccessIsUnwrapped(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]string{"hello": "world"})

	if got := w.Code; got != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", got)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Fatalf("unexpected payload %v", body)
	}
}

func TestWriteErrorMapsTypedError(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "Validation failed").
		WithDetails([]map[string]string{{"field": "quantity", "message": "must be at least 1"}})
	WriteError(context.Background(), logger.Nop(), w, err)

	if got := w.Code; got != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", got)
	}
	body := decodeError(t, w)
	if body.Code != string(pkgerrors.CodeValidation) || body.Error != "Validation failed" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Details == nil {
		t.Fatal("expected details in public payload")
	}
	if body.Stack != "" {
		t.Fatal("stack must not be exposed without debug")
	}
}

func TestWriteErrorHidesInternalMessagesOutsideDebug(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, errors.New("boom"))

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}
	body := decodeError(t, w)
	if body.Error != "Internal server error" {
		t.Fatalf("expected generic message, got %q", body.Error)
	}
}

func TestWriteErrorDebugIncludesStack(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := WithDebug(context.Background(), true)
	WriteError(ctx, logger.Nop(), w, pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("disk full"), "write failed"))

	body := decodeError(t, w)
	if body.Error != "write failed" {
		t.Fatalf("expected internal message in debug, got %q", body.Error)
	}
	if body.Stack == "" {
		t.Fatal("expected stack in debug mode")
	}
}

func TestWriteErrorMapsRawConstraintViolations(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, gorm.ErrDuplicatedKey)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	WriteError(context.Background(), nil, w, gorm.ErrCheckConstraintViolated)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Error != "Database constraint violation" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}
