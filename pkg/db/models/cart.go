package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Cart holds the entries for exactly one identity: a user or a guest.
type Cart struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	UserID    *uuid.UUID        `gorm:"column:user_id;type:uuid;uniqueIndex:carts_user_id_key"`
	GuestID   *uuid.UUID        `gorm:"column:guest_id;type:uuid;uniqueIndex:carts_guest_id_key"`
	Items     types.CartEntries `gorm:"column:items;type:jsonb;not null"`
	Version   int               `gorm:"column:version;not null;default:1"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Cart) TableName() string { return "carts" }

func (c *Cart) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Items == nil {
		c.Items = types.CartEntries{}
	}
	return nil
}
