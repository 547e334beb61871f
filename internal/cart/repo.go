package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Repository persists carts. Item lists are always written whole, guarded by
// the row version.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindByIdentity loads the cart owned by identity. Missing rows return gorm.ErrRecordNotFound.
func (r *Repository) FindByIdentity(ctx context.Context, identity Identity) (*models.Cart, error) {
	if identity.IsZero() {
		return nil, gorm.ErrRecordNotFound
	}
	q := r.db.WithContext(ctx)
	if identity.IsUser() {
		q = q.Where("user_id = ?", identity.UserID)
	} else {
		q = q.Where("guest_id = ?", identity.GuestID)
	}
	var cart models.Cart
	if err := q.First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create inserts a new cart row.
func (r *Repository) Create(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

// UpdateItems replaces the item list when the stored version still equals
// cart.Version. On success cart reflects the new row state; when the row moved
// on, ErrVersionConflict is returned and cart is left untouched.
func (r *Repository) UpdateItems(ctx context.Context, cart *models.Cart, items types.CartEntries, now time.Time) error {
	if items == nil {
		items = types.CartEntries{}
	}
	res := r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		UpdateColumns(map[string]any{
			"items":      items,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	cart.Items = items
	cart.Version++
	cart.UpdatedAt = now
	return nil
}

// DeleteVersioned removes the cart if it is still at version.
func (r *Repository) DeleteVersioned(ctx context.Context, id uuid.UUID, version int) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", id, version).
		Delete(&models.Cart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}
