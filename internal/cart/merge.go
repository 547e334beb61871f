package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Merge folds the guest cart into the user's cart and deletes the guest cart,
// all in one transaction. Quantities of shared items are summed without a stock
// check. A retried merge after success finds no guest cart and is a no-op.
func (s *service) Merge(ctx context.Context, userID uuid.UUID, guestID *uuid.UUID) (*MergeResult, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if guestID == nil || *guestID == uuid.Nil {
		return &MergeResult{Success: true, Message: mergeNoGuestMessage}, nil
	}

	userIdentity := Identity{UserID: userID}
	guestIdentity := Identity{GuestID: *guestID}

	created := false
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		var (
			merged *models.Cart
			units  int
			empty  bool
		)
		err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			repo := s.repo.WithTx(tx)

			guest, err := repo.FindByIdentity(ctx, guestIdentity)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					empty = true
					return nil
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load guest cart")
			}
			if len(guest.Items) == 0 {
				empty = true
				return deleteGuest(ctx, repo, guest)
			}

			user, err := repo.FindByIdentity(ctx, userIdentity)
			if errors.Is(err, gorm.ErrRecordNotFound) && !created {
				return errNoUserCart
			}
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user cart")
			}

			next, moved := foldEntries(user.Items, guest.Items)
			if err := repo.UpdateItems(ctx, user, next, s.now().UTC()); err != nil {
				return err
			}
			if err := deleteGuest(ctx, repo, guest); err != nil {
				return err
			}
			merged = user
			units = moved
			return nil
		})
		if errors.Is(err, errNoUserCart) {
			// Created outside the transaction: a unique violation inside it
			// would abort the transaction on Postgres.
			if _, err := s.loadOrCreate(ctx, s.repo, userIdentity); err != nil {
				return nil, err
			}
			created = true
			attempt--
			continue
		}
		if errors.Is(err, ErrVersionConflict) {
			s.noteConflict(ctx, userIdentity, attempt)
			continue
		}
		if err != nil {
			if pkgerrors.As(err) != nil {
				return nil, err
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "merge cart")
		}

		if empty {
			return &MergeResult{Success: true, Message: mergeNoItemsMessage, ClearGuest: true}, nil
		}
		s.publish(ctx, Event{Type: EventCartMerged, CartID: merged.ID, Identity: userIdentity, Units: units})
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"user_id":  userID.String(),
			"guest_id": guestID.String(),
			"units":    units,
		}), "guest cart merged")
		return &MergeResult{Success: true, Message: mergeCompletedMessage, ClearGuest: true}, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeConflict, conflictMessage)
}

// errNoUserCart asks Merge to create the user cart and retry the transaction.
var errNoUserCart = errors.New("user cart missing")

func deleteGuest(ctx context.Context, repo CartRepository, guest *models.Cart) error {
	if err := repo.DeleteVersioned(ctx, guest.ID, guest.Version); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete guest cart")
	}
	return nil
}

// foldEntries adds guest entries into base. Shared items sum their quantities;
// new items keep the guest's addedAt. Returns the units moved.
func foldEntries(base, guest types.CartEntries) (types.CartEntries, int) {
	next := base.Clone()
	moved := 0
	for _, entry := range guest {
		moved += entry.Quantity
		if idx := next.Find(entry.ItemID); idx >= 0 {
			next[idx].Quantity += entry.Quantity
			continue
		}
		next = append(next, entry)
	}
	return next, moved
}
