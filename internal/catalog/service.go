package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Service exposes read-only catalog operations.
type Service interface {
	ListItems(ctx context.Context, input ListItemsInput) (*ItemListResult, error)
	GetItem(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
	Categories() []enums.ItemCategory
	// LookupItem reads straight from the database. Returns nil, nil when absent.
	LookupItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	// LookupItems reads every existing item in ids with a single query.
	LookupItems(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Item, error)
}

type itemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Item, error)
	List(ctx context.Context, query listQuery) ([]models.Item, int64, error)
}

type service struct {
	repo  itemRepository
	cache ItemCache
	logg  *logger.Logger
}

// NewService constructs the catalog service. cache may be nil.
func NewService(repo itemRepository, cache ItemCache, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{repo: repo, cache: cache, logg: logg}, nil
}

func (s *service) ListItems(ctx context.Context, input ListItemsInput) (*ItemListResult, error) {
	if err := input.Filters.validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}
	filters := input.Filters
	if filters.Sort == "" {
		filters.Sort = enums.ItemSortNewest
	}
	params := input.Pagination.Normalize()

	rows, total, err := s.repo.List(ctx, listQuery{Filters: filters, Pagination: params})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	items := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		items = append(items, FromModel(&rows[i]))
	}
	return &ItemListResult{Items: items, Meta: params.MetaFor(total)}, nil
}

func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			dto := FromModel(cached)
			return &dto, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"item_id": id.String(), "error": err.Error()}), "item cache read failed")
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, item); err != nil {
			s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"item_id": id.String(), "error": err.Error()}), "item cache write failed")
		}
	}
	dto := FromModel(item)
	return &dto, nil
}

func (s *service) Categories() []enums.ItemCategory {
	return enums.ItemCategories()
}

func (s *service) LookupItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	return item, nil
}

func (s *service) LookupItems(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Item, error) {
	items, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load items")
	}
	return items, nil
}
