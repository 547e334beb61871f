package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/angelmondragon/storefront-backend/api/responses"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	pkgredis "github.com/angelmondragon/storefront-backend/pkg/redis"
	"github.com/angelmondragon/storefront-backend/pkg/security"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyReplay = "Idempotent-Replayed"
	maxIdempotencyKey = 255

	defaultIdempotencyTTL = 24 * time.Hour
	// pendingTTL bounds how long a crashed request can hold its key.
	pendingTTL = 30 * time.Second
)

type idempotencyStore interface {
	Get(context.Context, string) (string, error)
	Set(context.Context, string, any, time.Duration) error
	SetNX(context.Context, string, any, time.Duration) (bool, error)
	Del(context.Context, ...string) error
	IdempotencyKey(scope, id string) string
}

// idempotencyRecord is stored under the key. A record without Status marks a
// request that is still running.
type idempotencyRecord struct {
	Fingerprint string   `json:"fingerprint"`
	Status      int      `json:"status,omitempty"`
	ContentType string   `json:"content_type,omitempty"`
	Cookies     []string `json:"cookies,omitempty"`
	Body        []byte   `json:"body,omitempty"`
}

func (rec idempotencyRecord) pending() bool { return rec.Status == 0 }

// Idempotency makes the wrapped route safe to retry with the same
// Idempotency-Key. The key is claimed before the handler runs; a 2xx response
// is kept for ttl and replayed with its cookies, anything else releases the key. Requests
// without the header pass through.
func Idempotency(store idempotencyStore, ttl time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			clientKey := strings.TrimSpace(r.Header.Get(idempotencyHeader))
			if clientKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(clientKey) > maxIdempotencyKey {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Idempotency-Key header too long"))
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := store.IdempotencyKey(idempotencyScope(r), clientKey)
			fingerprint := security.HashToken(r.Method + " " + r.URL.Path + "\n" + string(body))

			claim, _ := json.Marshal(idempotencyRecord{Fingerprint: fingerprint})
			claimed, err := store.SetNX(ctx, key, string(claim), pendingTTL)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim idempotency key"))
				return
			}
			if !claimed {
				replayIdempotent(ctx, store, key, fingerprint, logg, w)
				return
			}

			var captured bytes.Buffer
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&captured)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status < 200 || status >= 300 {
				logIfErr(ctx, logg, "idempotency.release_failed", store.Del(ctx, key))
				return
			}
			done, err := json.Marshal(idempotencyRecord{
				Fingerprint: fingerprint,
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Cookies:     ww.Header().Values("Set-Cookie"),
				Body:        captured.Bytes(),
			})
			if err == nil {
				err = store.Set(ctx, key, string(done), ttl)
			}
			logIfErr(ctx, logg, "idempotency.persist_failed", err)
		})
	}
}

func replayIdempotent(ctx context.Context, store idempotencyStore, key, fingerprint string, logg *logger.Logger, w http.ResponseWriter) {
	raw, err := store.Get(ctx, key)
	if pkgredis.IsNil(err) {
		// the claim expired or was released between SetNX and Get
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeConflict, "Request with this Idempotency-Key is still being processed"))
		return
	}
	if err != nil {
		responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load idempotency record"))
		return
	}

	var rec idempotencyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode idempotency record"))
		return
	}
	switch {
	case rec.Fingerprint != fingerprint:
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeIdempotency, "Idempotency-Key reused with a different request"))
	case rec.pending():
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeConflict, "Request with this Idempotency-Key is still being processed"))
	default:
		if rec.ContentType != "" {
			w.Header().Set("Content-Type", rec.ContentType)
		}
		// cookie changes such as an expired guest_id must reach a client
		// that lost the first response
		for _, c := range rec.Cookies {
			w.Header().Add("Set-Cookie", c)
		}
		w.Header().Set(idempotencyReplay, "true")
		w.WriteHeader(rec.Status)
		_, _ = w.Write(rec.Body)
	}
}

// idempotencyScope keeps one caller's keys from colliding with another's.
func idempotencyScope(r *http.Request) string {
	who := "anon"
	if id, ok := UserIDFromContext(r.Context()); ok {
		who = "user:" + id.String()
	} else if id, ok := GuestIDFromContext(r.Context()); ok {
		who = "guest:" + id.String()
	}
	return who + "|" + r.Method + "|" + r.URL.Path
}

func logIfErr(ctx context.Context, logg *logger.Logger, msg string, err error) {
	if logg != nil && err != nil {
		logg.Error(ctx, msg, err)
	}
}
