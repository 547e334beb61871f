package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// ErrVersionConflict is returned when a versioned write matched no row.
var ErrVersionConflict = errors.New("cart version conflict")

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	FindByIdentity(ctx context.Context, identity Identity) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	UpdateItems(ctx context.Context, cart *models.Cart, items types.CartEntries, now time.Time) error
	DeleteVersioned(ctx context.Context, id uuid.UUID, version int) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type catalogReader interface {
	LookupItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	LookupItems(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Item, error)
}

type conflictCounter interface {
	IncConflict()
}
