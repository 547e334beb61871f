package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type sqlSource interface {
	SQL() (*sql.DB, error)
}

// AutoRunEnabled is true only for dev environments with STOREFRONT_AUTO_MIGRATE set.
func AutoRunEnabled(cfg *config.Config) bool {
	return cfg != nil && cfg.App.IsDev() && cfg.FeatureFlags.AutoMigrate
}

// MaybeRunDev brings the schema up to date from the embedded migrations when
// AutoRunEnabled allows it. Other environments run cmd/migrate explicitly.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, src sqlSource) error {
	if !AutoRunEnabled(cfg) {
		return nil
	}
	sqlDB, err := src.SQL()
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	started := time.Now()
	if err := Run(ctx, sqlDB, "", "up"); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	var version int64
	_ = withGoose("", func(string) error {
		version, err = goose.GetDBVersionContext(ctx, sqlDB)
		return err
	})
	logg.Info(logg.WithFields(ctx, map[string]any{
		"schema_version": version,
		"duration_ms":    time.Since(started).Milliseconds(),
	}), "migrations.auto_applied")
	return nil
}
