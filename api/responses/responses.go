package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/angelmondragon/storefront-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

type debugKey struct{}

// WithDebug marks ctx so error responses carry internal messages and the
// error chain.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, debugKey{}, enabled)
}

func isDebug(ctx context.Context) bool {
	on, _ := ctx.Value(debugKey{}).(bool)
	return on
}

// WriteSuccess writes data as the bare response body; success payloads are
// not wrapped in an envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	typed := classify(err)
	meta := pkgerrors.MetadataFor(typed.Code())
	dump := pkgerrors.Dump(err)
	debug := isDebug(ctx)

	body := ErrorBody{
		Error: publicMessage(typed, meta, debug),
		Code:  string(typed.Code()),
	}
	if meta.DetailsAllowed {
		body.Details = typed.Details()
	}
	if debug {
		body.Stack = strings.Join(dump.Chain, "\n")
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, dump.Fields())
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(ctx, "request.rejected")
		}
	}
	writeJSON(w, meta.HTTPStatus, body)
}

// publicMessage hides server-side messages unless debug is on; client errors
// always carry their own message.
func publicMessage(typed *pkgerrors.Error, meta pkgerrors.Metadata, debug bool) string {
	msg := typed.Message()
	if msg == "" {
		return meta.PublicMessage
	}
	if meta.HTTPStatus >= http.StatusInternalServerError && !debug {
		return meta.PublicMessage
	}
	return msg
}

// classify maps constraint violations that escaped the service layer.
func classify(err error) *pkgerrors.Error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "Resource already exists")
	}
	if db.IsConstraintViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Database constraint violation")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	buf, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		buf, _ = json.Marshal(ErrorBody{Error: "Internal server error", Code: string(pkgerrors.CodeInternal)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(buf, '\n'))
}
