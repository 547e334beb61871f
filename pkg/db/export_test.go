package db

import (
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

func NewQueryLoggerForTest(logg *logger.Logger, slow time.Duration) gormlogger.Interface {
	return newQueryLogger(logg, slow)
}
