package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/users"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/migrate"
	"github.com/angelmondragon/storefront-backend/pkg/security"
)

const (
	adminName     = "Admin User"
	adminEmail    = "admin@buybuddy.com"
	adminPassword = "admin123"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	s := seeder{
		items:    catalog.NewRepository(dbClient.DB()),
		users:    users.NewRepository(dbClient.DB()),
		password: cfg.Password,
		logg:     logg,
	}
	res, err := s.run(ctx)
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"items_created": res.itemsCreated,
		"items_skipped": res.itemsSkipped,
		"admin_created": res.adminCreated,
		"admin_email":   adminEmail,
	}), "seeding complete")
}

type itemWriter interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, item *models.Item) error
}

type userWriter interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type seeder struct {
	items    itemWriter
	users    userWriter
	password config.PasswordConfig
	logg     *logger.Logger
}

type seedResult struct {
	itemsCreated int
	itemsSkipped int
	adminCreated bool
}

// run inserts the admin account and sample catalog, skipping rows that
// already exist so repeated runs are harmless.
func (s seeder) run(ctx context.Context) (seedResult, error) {
	var res seedResult

	created, err := s.ensureAdmin(ctx)
	if err != nil {
		return res, err
	}
	res.adminCreated = created

	for _, sample := range sampleCatalog {
		exists, err := s.items.ExistsByTitle(ctx, sample.Title)
		if err != nil {
			return res, fmt.Errorf("check item %q: %w", sample.Title, err)
		}
		if exists {
			res.itemsSkipped++
			continue
		}
		item, err := sample.toModel()
		if err != nil {
			return res, err
		}
		if err := s.items.Create(ctx, item); err != nil {
			return res, fmt.Errorf("create item %q: %w", sample.Title, err)
		}
		res.itemsCreated++
	}
	return res, nil
}

func (s seeder) ensureAdmin(ctx context.Context) (bool, error) {
	_, err := s.users.FindByEmail(ctx, adminEmail)
	if err == nil {
		s.logg.Debug(ctx, "seed.admin_exists")
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := security.HashPassword(adminPassword, s.password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: hash,
		IsVerified:   true,
	}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

func (i sampleItem) toModel() (*models.Item, error) {
	price, err := decimal.NewFromString(i.Price)
	if err != nil {
		return nil, fmt.Errorf("item %q price: %w", i.Title, err)
	}
	return &models.Item{
		Title:       i.Title,
		Description: i.Description,
		Price:       price,
		Category:    i.Category,
		Tags:        i.Tags,
		Images:      []string{i.Image},
		Stock:       i.Stock,
		Rating:      i.Rating,
		ReviewCount: i.ReviewCount,
		Specs:       i.Specs,
	}, nil
}
