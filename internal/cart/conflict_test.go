package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// stubCartRepo keeps carts in memory and can lose a number of version races.
type stubCartRepo struct {
	carts        map[Identity]*models.Cart
	conflictsFor int
	updates      int
	createErr    error
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: map[Identity]*models.Cart{}}
}

func (r *stubCartRepo) WithTx(*gorm.DB) CartRepository { return r }

func (r *stubCartRepo) FindByIdentity(_ context.Context, identity Identity) (*models.Cart, error) {
	cart, ok := r.carts[identity]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *cart
	clone.Items = cart.Items.Clone()
	return &clone, nil
}

func (r *stubCartRepo) Create(_ context.Context, cart *models.Cart) error {
	identity := ResolveIdentity(cart.UserID, cart.GuestID)
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		// another request won the insert race
		r.carts[identity] = &models.Cart{ID: uuid.New(), UserID: cart.UserID, GuestID: cart.GuestID, Items: types.CartEntries{}, Version: 1}
		return err
	}
	cart.ID = uuid.New()
	cart.Version = 1
	cart.Items = types.CartEntries{}
	stored := *cart
	r.carts[identity] = &stored
	return nil
}

func (r *stubCartRepo) UpdateItems(_ context.Context, cart *models.Cart, items types.CartEntries, now time.Time) error {
	r.updates++
	identity := ResolveIdentity(cart.UserID, cart.GuestID)
	stored := r.carts[identity]
	if r.conflictsFor > 0 {
		r.conflictsFor--
		stored.Version++
	}
	if stored.Version != cart.Version {
		return ErrVersionConflict
	}
	stored.Items = items.Clone()
	stored.Version++
	stored.UpdatedAt = now
	cart.Items = items
	cart.Version = stored.Version
	cart.UpdatedAt = now
	return nil
}

func (r *stubCartRepo) DeleteVersioned(_ context.Context, id uuid.UUID, version int) error {
	for identity, cart := range r.carts {
		if cart.ID == id {
			if cart.Version != version {
				return ErrVersionConflict
			}
			delete(r.carts, identity)
			return nil
		}
	}
	return ErrVersionConflict
}

type stubCatalog struct {
	items map[uuid.UUID]models.Item
}

func (c stubCatalog) LookupItem(_ context.Context, id uuid.UUID) (*models.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (c stubCatalog) LookupItems(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Item, error) {
	out := map[uuid.UUID]models.Item{}
	for _, id := range ids {
		if item, ok := c.items[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type countingConflicts struct{ n int }

func (c *countingConflicts) IncConflict() { c.n++ }

func newStubService(t *testing.T, repo *stubCartRepo, item models.Item, conflicts *countingConflicts) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Tx:        passthroughTx{},
		Catalog:   stubCatalog{items: map[uuid.UUID]models.Item{item.ID: item}},
		Conflicts: conflicts,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestWriteRetriesOnVersionConflict(t *testing.T) {
	repo := newStubCartRepo()
	repo.conflictsFor = 2
	item := models.Item{ID: uuid.New(), Title: "Pen", Price: decimal.RequireFromString("1.50"), Stock: 10}
	conflicts := &countingConflicts{}
	svc := newStubService(t, repo, item, conflicts)

	view, err := svc.Add(context.Background(), Identity{GuestID: uuid.New()}, item.ID, 2)
	if err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if repo.updates != 3 {
		t.Fatalf("expected 3 write attempts, got %d", repo.updates)
	}
	if conflicts.n != 2 {
		t.Fatalf("expected 2 conflicts counted, got %d", conflicts.n)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", view.Items)
	}
}

func TestWriteGivesUpAfterThreeConflicts(t *testing.T) {
	repo := newStubCartRepo()
	repo.conflictsFor = 3
	item := models.Item{ID: uuid.New(), Title: "Pen", Price: decimal.RequireFromString("1.50"), Stock: 10}
	svc := newStubService(t, repo, item, nil)

	_, err := svc.Add(context.Background(), Identity{UserID: uuid.New()}, item.ID, 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if typed.Message() != "Cart was modified concurrently, please retry" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestLoadOrCreateRefetchesAfterUniqueViolation(t *testing.T) {
	repo := newStubCartRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	item := models.Item{ID: uuid.New(), Title: "Pen", Price: decimal.RequireFromString("1.50"), Stock: 10}
	svc := newStubService(t, repo, item, nil)
	guest := Identity{GuestID: uuid.New()}

	view, err := svc.Get(context.Background(), guest)
	if err != nil {
		t.Fatalf("expected re-fetch to succeed, got %v", err)
	}
	winner := repo.carts[guest]
	if view.CartID == nil || *view.CartID != winner.ID {
		t.Fatalf("expected winner cart %s, got %v", winner.ID, view.CartID)
	}
}

func TestMergeRetriesOnConflict(t *testing.T) {
	repo := newStubCartRepo()
	item := models.Item{ID: uuid.New(), Title: "Pen", Price: decimal.RequireFromString("1.50"), Stock: 10}
	svc := newStubService(t, repo, item, nil)
	ctx := context.Background()
	userID, guestID := uuid.New(), uuid.New()

	if _, err := svc.Add(ctx, Identity{GuestID: guestID}, item.ID, 2); err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	repo.conflictsFor = 1

	res, err := svc.Merge(ctx, userID, &guestID)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if res.Message != "Cart merged successfully" {
		t.Fatalf("unexpected message %q", res.Message)
	}
	user := repo.carts[Identity{UserID: userID}]
	if len(user.Items) != 1 || user.Items[0].Quantity != 2 {
		t.Fatalf("unexpected merged items %+v", user.Items)
	}
	if _, ok := repo.carts[Identity{GuestID: guestID}]; ok {
		t.Fatal("guest cart should be deleted")
	}
}

func TestMergeReturnsDependencyErrors(t *testing.T) {
	item := models.Item{ID: uuid.New()}
	svc := newStubService(t, newStubCartRepo(), item, nil)
	failing := svc.(*service)
	failing.tx = failingTx{err: errors.New("connection reset")}

	guestID := uuid.New()
	_, err := svc.Merge(context.Background(), uuid.New(), &guestID)
	if !pkgerrors.HasCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

type failingTx struct{ err error }

func (f failingTx) WithTx(context.Context, func(tx *gorm.DB) error) error { return f.err }
