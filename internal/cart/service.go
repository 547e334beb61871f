package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Service exposes cart operations for one identity at a time.
type Service interface {
	Get(ctx context.Context, identity Identity) (*CartDTO, error)
	Add(ctx context.Context, identity Identity, itemID uuid.UUID, quantity int) (*CartDTO, error)
	Update(ctx context.Context, identity Identity, itemID uuid.UUID, quantity int) (*CartDTO, error)
	Remove(ctx context.Context, identity Identity, itemID uuid.UUID) error
	Clear(ctx context.Context, identity Identity) (*CartDTO, error)
	Merge(ctx context.Context, userID uuid.UUID, guestID *uuid.UUID) (*MergeResult, error)
}

type service struct {
	repo      CartRepository
	tx        txRunner
	catalog   catalogReader
	events    *Hub
	conflicts conflictCounter
	logg      *logger.Logger
	now       func() time.Time
}

// ServiceParams bundles the cart service dependencies. Events, Conflicts and
// Logger are optional.
type ServiceParams struct {
	Repo      CartRepository
	Tx        txRunner
	Catalog   catalogReader
	Events    *Hub
	Conflicts conflictCounter
	Logger    *logger.Logger
	Now       func() time.Time
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:      params.Repo,
		tx:        params.Tx,
		catalog:   params.Catalog,
		events:    params.Events,
		conflicts: params.Conflicts,
		logg:      logg,
		now:       now,
	}, nil
}

// errUnchanged lets a mutation skip the write when nothing changed.
var errUnchanged = errors.New("cart unchanged")

// mutation computes the next entry list from the freshly loaded cart. It must
// not modify cart.Items in place.
type mutation func(cart *models.Cart) (types.CartEntries, error)

func (s *service) Get(ctx context.Context, identity Identity) (*CartDTO, error) {
	if identity.IsZero() {
		return EmptyCart(), nil
	}
	cart, err := s.loadOrCreate(ctx, s.repo, identity)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, cart)
}

func (s *service) Add(ctx context.Context, identity Identity, itemID uuid.UUID, quantity int) (*CartDTO, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if quantity < 1 || quantity > maxEntryQuantity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, quantityRangeMessage)
	}

	item, err := s.catalog.LookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
	}
	if quantity > item.Stock {
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, insufficientStockMsg)
	}

	cart, err := s.write(ctx, identity, func(cart *models.Cart) (types.CartEntries, error) {
		next := cart.Items.Clone()
		if idx := next.Find(itemID); idx >= 0 {
			total := next[idx].Quantity + quantity
			if total > item.Stock {
				return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, insufficientStockMsg)
			}
			if total > maxEntryQuantity {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, quantityRangeMessage)
			}
			next[idx].Quantity = total
			return next, nil
		}
		return append(next, types.CartEntry{
			ItemID:   itemID,
			Quantity: quantity,
			AddedAt:  s.now().UTC(),
		}), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, Event{Type: EventItemAdded, CartID: cart.ID, Identity: identity, ItemID: itemID, Units: quantity})
	return s.render(ctx, cart)
}

func (s *service) Update(ctx context.Context, identity Identity, itemID uuid.UUID, quantity int) (*CartDTO, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, useDeleteMessage)
	}
	if quantity < 1 || quantity > maxEntryQuantity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, quantityRangeMessage)
	}

	item, err := s.catalog.LookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cart, err := s.write(ctx, identity, func(cart *models.Cart) (types.CartEntries, error) {
		idx := cart.Items.Find(itemID)
		if idx < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotInCartMessage)
		}
		// Entries whose item left the catalog price as unknown; stock cannot be checked.
		if item != nil && quantity > item.Stock {
			return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, insufficientStockMsg)
		}
		next := cart.Items.Clone()
		next[idx].Quantity = quantity
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, Event{Type: EventItemUpdated, CartID: cart.ID, Identity: identity, ItemID: itemID, Units: quantity})
	return s.render(ctx, cart)
}

func (s *service) Remove(ctx context.Context, identity Identity, itemID uuid.UUID) error {
	if identity.IsZero() {
		return nil
	}
	if _, err := s.repo.FindByIdentity(ctx, identity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	removed := 0
	cart, err := s.write(ctx, identity, func(cart *models.Cart) (types.CartEntries, error) {
		removed = 0
		next := make(types.CartEntries, 0, len(cart.Items))
		for _, entry := range cart.Items {
			if entry.ItemID == itemID {
				removed += entry.Quantity
				continue
			}
			next = append(next, entry)
		}
		if removed == 0 {
			return nil, errUnchanged
		}
		return next, nil
	})
	if err != nil {
		return err
	}
	if removed > 0 {
		s.publish(ctx, Event{Type: EventItemRemoved, CartID: cart.ID, Identity: identity, ItemID: itemID, Units: removed})
	}
	return nil
}

func (s *service) Clear(ctx context.Context, identity Identity) (*CartDTO, error) {
	if identity.IsZero() {
		return EmptyCart(), nil
	}
	units := 0
	cart, err := s.write(ctx, identity, func(cart *models.Cart) (types.CartEntries, error) {
		units = totalUnits(cart.Items)
		return types.CartEntries{}, nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, Event{Type: EventCartCleared, CartID: cart.ID, Identity: identity, Units: units})
	return s.render(ctx, cart)
}

// write applies fn to the current cart and persists the result with a version
// check, re-reading and re-applying on conflict.
func (s *service) write(ctx context.Context, identity Identity, fn mutation) (*models.Cart, error) {
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		cart, err := s.loadOrCreate(ctx, s.repo, identity)
		if err != nil {
			return nil, err
		}
		next, err := fn(cart)
		if errors.Is(err, errUnchanged) {
			return cart, nil
		}
		if err != nil {
			return nil, err
		}
		err = s.repo.UpdateItems(ctx, cart, next, s.now().UTC())
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart")
		}
		s.noteConflict(ctx, identity, attempt)
	}
	return nil, pkgerrors.New(pkgerrors.CodeConflict, conflictMessage)
}

// loadOrCreate returns the identity's cart, inserting an empty one when absent.
// A concurrent insert for the same identity trips the unique index and the
// winner's row is returned instead.
func (s *service) loadOrCreate(ctx context.Context, repo CartRepository, identity Identity) (*models.Cart, error) {
	cart, err := repo.FindByIdentity(ctx, identity)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	cart = identity.newCart()
	if err := repo.Create(ctx, cart); err != nil {
		if !db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart")
		}
		existing, findErr := repo.FindByIdentity(ctx, identity)
		if findErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, findErr, "reload cart after create race")
		}
		return existing, nil
	}
	return cart, nil
}

func (s *service) render(ctx context.Context, cart *models.Cart) (*CartDTO, error) {
	catalog, err := s.catalog.LookupItems(ctx, cart.Items.ItemIDs())
	if err != nil {
		return nil, err
	}
	return toDTO(cart, Price(cart.Items, catalog)), nil
}

func (s *service) publish(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = s.now().UTC()
	}
	s.events.Publish(ctx, event)
}

func (s *service) noteConflict(ctx context.Context, identity Identity, attempt int) {
	if s.conflicts != nil {
		s.conflicts.IncConflict()
	}
	s.logg.Debug(s.logg.WithFields(ctx, map[string]any{
		"identity": identity.Kind(),
		"attempt":  attempt,
	}), "cart version conflict")
}

func requireIdentity(identity Identity) error {
	if identity.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart identity required")
	}
	return nil
}

func totalUnits(entries types.CartEntries) int {
	total := 0
	for _, entry := range entries {
		total += entry.Quantity
	}
	return total
}
