package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePositiveInt reads an optional integer query parameter that must be ≥ 1.
func ParsePositiveInt(r *http.Request, key string, defaultVal int) (int, *FieldError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Message: "must be an integer"}
	}
	if value < 1 {
		return 0, &FieldError{Field: key, Message: "must be at least 1"}
	}
	return value, nil
}

// ParseNonNegativeDecimal reads an optional decimal query parameter that must be ≥ 0.
func ParseNonNegativeDecimal(r *http.Request, key string) (*decimal.Decimal, *FieldError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &FieldError{Field: key, Message: "must be a number"}
	}
	if value.IsNegative() {
		return nil, &FieldError{Field: key, Message: "must be at least 0"}
	}
	return &value, nil
}
