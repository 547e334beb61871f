package middleware

import (
	"context"

	"github.com/google/uuid"
)

// identityKey separates the authenticated user from the anonymous guest; a
// request may carry both during a merge.
type identityKey uint8

const (
	userIdentity identityKey = iota
	guestIdentity
)

func identity(ctx context.Context, key identityKey) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, _ := ctx.Value(key).(uuid.UUID)
	return id, id != uuid.Nil
}

func withIdentity(ctx context.Context, key identityKey, id uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, key, id)
}

func identityPtr(ctx context.Context, key identityKey) *uuid.UUID {
	if id, ok := identity(ctx, key); ok {
		return &id
	}
	return nil
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return identity(ctx, userIdentity)
}

// GuestIDFromContext returns the id GuestIdentity resolved from the cookie.
func GuestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return identity(ctx, guestIdentity)
}

// UserIDPtr and GuestIDPtr give the nil-when-absent form the cart service takes.
func UserIDPtr(ctx context.Context) *uuid.UUID {
	return identityPtr(ctx, userIdentity)
}

func GuestIDPtr(ctx context.Context) *uuid.UUID {
	return identityPtr(ctx, guestIdentity)
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return withIdentity(ctx, userIdentity, userID)
}

func WithGuestID(ctx context.Context, guestID uuid.UUID) context.Context {
	return withIdentity(ctx, guestIdentity, guestID)
}
