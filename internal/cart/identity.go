package cart

import (
	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
)

// Identity names the owner of a cart: a user, a guest, or nobody.
// A user id always wins over a guest id.
type Identity struct {
	UserID  uuid.UUID
	GuestID uuid.UUID
}

// ResolveIdentity combines the optional user and guest ids of a request.
func ResolveIdentity(userID, guestID *uuid.UUID) Identity {
	if userID != nil && *userID != uuid.Nil {
		return Identity{UserID: *userID}
	}
	if guestID != nil && *guestID != uuid.Nil {
		return Identity{GuestID: *guestID}
	}
	return Identity{}
}

func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil && i.GuestID == uuid.Nil
}

func (i Identity) IsUser() bool {
	return i.UserID != uuid.Nil
}

// Kind is "user", "guest" or "none"; used as a log and metric label.
func (i Identity) Kind() string {
	switch {
	case i.IsUser():
		return "user"
	case i.GuestID != uuid.Nil:
		return "guest"
	default:
		return "none"
	}
}

func (i Identity) newCart() *models.Cart {
	cart := &models.Cart{}
	if i.IsUser() {
		id := i.UserID
		cart.UserID = &id
	} else {
		id := i.GuestID
		cart.GuestID = &id
	}
	return cart
}
