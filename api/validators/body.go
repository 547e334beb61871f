package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const (
	maxBodyBytes  = 1 << 20
	failedMessage = "Validation failed"
)

var validate = newValidator()

// FieldError is one entry of a validation failure's details.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "", "-":
		return f.Name
	default:
		return name
	}
}

// DecodeJSONBody decodes the request body into dest and validates it.
func DecodeJSONBody(r *http.Request, dest any) error {
	if err := DecodeJSON(r, dest); err != nil {
		return err
	}
	return Validate(dest)
}

// DecodeJSON decodes exactly one JSON value from the body. Unknown fields are
// rejected.
func DecodeJSON(r *http.Request, dest any) error {
	defer io.Copy(io.Discard, r.Body)

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(dest)
	switch {
	case errors.Is(err, io.EOF):
		err = errors.New("request body is empty")
	case err == nil && dec.More():
		err = errors.New("request body must contain a single JSON object")
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, failedMessage).
			WithDetails([]FieldError{{Field: "body", Message: err.Error()}})
	}
	return nil
}

func Validate(dest any) error {
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, failedMessage)
	}
	details := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		details[i] = FieldError{Field: fe.Field(), Message: describe(fe)}
	}
	return ValidationFailed(details...)
}

// ValidationFailed builds the error used for hand-checked fields.
func ValidationFailed(details ...FieldError) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, failedMessage).WithDetails(details)
}

var fixedMessages = map[string]string{
	"required": "is required",
	"notblank": "must not be blank",
	"email":    "must be a valid email",
	"uuid":     "must be a valid id",
}

func describe(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	bound := map[string]string{"min": "at least", "max": "at most"}[fe.Tag()]
	if bound == "" {
		return "is invalid"
	}
	if fe.Kind() == reflect.String {
		return fmt.Sprintf("must be %s %s characters", bound, fe.Param())
	}
	return fmt.Sprintf("must be %s %s", bound, fe.Param())
}
