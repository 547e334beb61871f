package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
)

// RefreshTokenRepository persists hashed refresh tokens.
type RefreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository binds the repository to the provided GORM DB.
func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create stores a new token row.
func (r *RefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindActiveByHash returns the unrevoked, unexpired token matching hash.
// Missing rows return gorm.ErrRecordNotFound.
func (r *RefreshTokenRepository) FindActiveByHash(ctx context.Context, hash string, now time.Time) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = ? AND expires_at > ?", hash, false, now).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Revoke flags a single token. It reports false when the token was already
// revoked, which means another request rotated it first.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("id = ? AND revoked = ?", id, false).
		UpdateColumn("revoked", true)
	return res.RowsAffected == 1, res.Error
}

// RevokeAllForUser marks every active token of userID as revoked.
func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		UpdateColumn("revoked", true)
	return res.RowsAffected, res.Error
}
