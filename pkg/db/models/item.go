package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Item is a catalog product. Read-only outside of seeding.
type Item struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Title         string             `gorm:"column:title;not null"`
	Description   string             `gorm:"column:description;not null;default:''"`
	Price         decimal.Decimal    `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal   `gorm:"column:original_price;type:numeric(10,2)"`
	Category      enums.ItemCategory `gorm:"column:category;type:text;not null"`
	Tags          types.StringList   `gorm:"column:tags;type:jsonb;not null"`
	Images        types.StringList   `gorm:"column:images;type:jsonb;not null"`
	Stock         int                `gorm:"column:stock;not null;default:0"`
	Rating        float64            `gorm:"column:rating;not null;default:0"`
	ReviewCount   int                `gorm:"column:review_count;not null;default:0"`
	Specs         types.StringMap    `gorm:"column:specs;type:jsonb;not null"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Item) TableName() string { return "items" }

func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
