package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

const (
	GuestCookieName = "guest_id"
	guestCookieTTL  = 30 * 24 * time.Hour
)

// GuestIdentity resolves the guest_id cookie. POST and PUT from a request
// with no user and no guest mint a fresh guest id. Reads and deletes never
// need a cart, so they never mint.
func GuestIdentity(secure bool, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if c, err := r.Cookie(GuestCookieName); err == nil {
				if id, parseErr := uuid.Parse(c.Value); parseErr == nil && id != uuid.Nil {
					ctx = WithGuestID(ctx, id)
				}
			}

			_, hasUser := UserIDFromContext(ctx)
			_, hasGuest := GuestIDFromContext(ctx)
			if !hasUser && !hasGuest && mintsGuest(r.Method) {
				id := uuid.New()
				SetGuestCookie(w, id, secure)
				ctx = WithGuestID(ctx, id)
				if logg != nil {
					logg.Debug(logg.WithGuestID(ctx, id.String()), "guest.minted")
				}
			}

			if id, ok := GuestIDFromContext(ctx); ok && logg != nil {
				ctx = logg.WithGuestID(ctx, id.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mintsGuest(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut:
		return true
	default:
		return false
	}
}

// SetGuestCookie writes the guest_id cookie.
func SetGuestCookie(w http.ResponseWriter, id uuid.UUID, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookieName,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(guestCookieTTL.Seconds()),
		Expires:  time.Now().Add(guestCookieTTL),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearGuestCookie expires the guest_id cookie on the client.
func ClearGuestCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
