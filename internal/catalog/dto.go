package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// ItemDTO is the public shape of a catalog item.
type ItemDTO struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Price         float64            `json:"price"`
	OriginalPrice *float64           `json:"original_price"`
	Category      enums.ItemCategory `json:"category"`
	Tags          []string           `json:"tags"`
	Images        []string           `json:"images"`
	Stock         int                `json:"stock"`
	Rating        float64            `json:"rating"`
	ReviewCount   int                `json:"review_count"`
	Specs         map[string]string  `json:"specs"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// FromModel converts the persisted item into the response DTO.
func FromModel(m *models.Item) ItemDTO {
	dto := ItemDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price.InexactFloat64(),
		Category:    m.Category,
		Tags:        nonNilStrings(m.Tags),
		Images:      nonNilStrings(m.Images),
		Stock:       m.Stock,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		Specs:       m.Specs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.OriginalPrice != nil {
		v := m.OriginalPrice.InexactFloat64()
		dto.OriginalPrice = &v
	}
	if dto.Specs == nil {
		dto.Specs = map[string]string{}
	}
	return dto
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
