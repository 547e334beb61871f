package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
)

// ItemInput is the body of add and update requests.
type ItemInput struct {
	ItemID   string `json:"itemId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"min=1,max=99"`
}

// LineDTO is one priced cart line.
type LineDTO struct {
	ItemID   uuid.UUID `json:"itemId"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Image    *string   `json:"image"`
}

// CartDTO is the cart as returned to clients.
type CartDTO struct {
	CartID   *uuid.UUID `json:"cartId,omitempty"`
	UserID   *uuid.UUID `json:"userId,omitempty"`
	Items    []LineDTO  `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// MutationResult wraps the cart after add, update or clear.
type MutationResult struct {
	Success bool     `json:"success"`
	Cart    *CartDTO `json:"cart"`
}

// MergeResult reports the outcome of folding a guest cart into a user cart.
type MergeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// ClearGuest tells the transport to expire the guest cookie.
	ClearGuest bool `json:"-"`
}

const (
	mergeNoGuestMessage   = "No guest cart to merge"
	mergeNoItemsMessage   = "No guest cart items to merge"
	mergeCompletedMessage = "Cart merged successfully"
	conflictMessage       = "Cart was modified concurrently, please retry"
	insufficientStockMsg  = "Insufficient stock"
	itemNotFoundMessage   = "Item not found"
	itemNotInCartMessage  = "Item not in cart"
	useDeleteMessage      = "Use DELETE endpoint to remove items"
	quantityRangeMessage  = "Quantity must be between 1 and 99"
	maxEntryQuantity      = 99
	maxWriteAttempts      = 3
)

// EmptyCart is returned when a request carries no identity.
func EmptyCart() *CartDTO {
	return &CartDTO{Items: []LineDTO{}}
}

func toDTO(cart *models.Cart, priced PricedCart) *CartDTO {
	dto := &CartDTO{
		Items:    make([]LineDTO, 0, len(priced.Lines)),
		Subtotal: priced.Subtotal.InexactFloat64(),
	}
	if cart != nil {
		id := cart.ID
		dto.CartID = &id
		dto.UserID = cart.UserID
	}
	for _, line := range priced.Lines {
		dto.Items = append(dto.Items, LineDTO{
			ItemID:   line.Entry.ItemID,
			Quantity: line.Entry.Quantity,
			AddedAt:  line.Entry.AddedAt,
			Name:     line.Name,
			Price:    line.Price.Round(2).InexactFloat64(),
			Image:    line.Image,
		})
	}
	return dto
}
