package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/internal/users"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/security"
)

// maxBodyBytes caps how much of a request body middleware will buffer.
const maxBodyBytes = 1 << 20

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
	TTL(context.Context, string) (time.Duration, error)
	RateLimitKey(scope string) string
}

// AuthRateLimitPolicy is a fixed-window budget for one auth endpoint, counted
// separately per client IP and per submitted email.
type AuthRateLimitPolicy struct {
	name       string
	window     time.Duration
	ipLimit    int
	emailLimit int
}

func NewAuthRateLimitPolicy(name string, window time.Duration, ipLimit, emailLimit int) AuthRateLimitPolicy {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "auth"
	}
	return AuthRateLimitPolicy{name: name, window: window, ipLimit: ipLimit, emailLimit: emailLimit}
}

func LoginRateLimitPolicy(cfg config.AuthRateLimitConfig) AuthRateLimitPolicy {
	return NewAuthRateLimitPolicy("login", cfg.LoginWindow, cfg.LoginIPLimit, cfg.LoginEmailLimit)
}

func SignupRateLimitPolicy(cfg config.AuthRateLimitConfig) AuthRateLimitPolicy {
	return NewAuthRateLimitPolicy("signup", cfg.SignupWindow, cfg.SignupIPLimit, cfg.SignupEmailLimit)
}

func (p AuthRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0)
}

type rateCheck struct {
	dimension string
	scope     string
	limit     int
}

// AuthRateLimit rejects a request with 429 once any of its counters exceeds
// the policy. The email is read from the JSON body, which is restored for the
// next handler; only its hash reaches redis.
func AuthRateLimit(policy AuthRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			checks, err := policy.checksFor(r)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request"))
				return
			}

			for _, check := range checks {
				key := store.RateLimitKey(check.scope)
				count, err := store.IncrWithTTL(ctx, key, policy.window)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if count > int64(check.limit) {
					retry := retryAfter(ctx, store, key, policy.window)
					rejectRateLimited(ctx, logg, w, policy, check, count, retry)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (p AuthRateLimitPolicy) checksFor(r *http.Request) ([]rateCheck, error) {
	var checks []rateCheck
	if p.ipLimit > 0 {
		if ip := clientIP(r); ip != "" {
			checks = append(checks, rateCheck{dimension: "ip", scope: "ip:" + p.name + ":" + ip, limit: p.ipLimit})
		}
	}
	if p.emailLimit > 0 {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return nil, err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if email := users.NormalizeEmail(emailFromBody(body)); email != "" {
			checks = append(checks, rateCheck{
				dimension: "email",
				scope:     "email:" + p.name + ":" + security.HashToken(email),
				limit:     p.emailLimit,
			})
		}
	}
	return checks, nil
}

// retryAfter reports the remaining window, falling back to the full window
// when the counter's TTL cannot be read.
func retryAfter(ctx context.Context, store rateLimiterStore, key string, window time.Duration) time.Duration {
	ttl, err := store.TTL(ctx, key)
	if err != nil || ttl <= 0 || ttl > window {
		return window
	}
	return ttl
}

func rejectRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, policy AuthRateLimitPolicy, check rateCheck, count int64, retry time.Duration) {
	seconds := int((retry + time.Second - 1) / time.Second)
	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"policy":        policy.name,
			"dimension":     check.dimension,
			"attempts":      count,
			"limit":         check.limit,
			"retry_seconds": seconds,
		})
		logg.Warn(ctx, "auth.rate_limited")
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "Too many attempts, please try again later"))
}

// clientIP reads RemoteAddr; the router's RealIP middleware has already
// applied any proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

func emailFromBody(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Email
}
