package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// UnknownProductName labels entries whose item is no longer in the catalog.
const UnknownProductName = "Unknown Product"

// PricedLine is a cart entry joined with current catalog data.
type PricedLine struct {
	Entry types.CartEntry
	Name  string
	Price decimal.Decimal
	Image *string
}

// PricedCart is the priced view of an entry list.
type PricedCart struct {
	Lines    []PricedLine
	Subtotal decimal.Decimal
}

// Price joins entries with the catalog snapshot. Prices are read at call time,
// never frozen on the entry. Subtotal is rounded to cents.
func Price(entries types.CartEntries, catalog map[uuid.UUID]models.Item) PricedCart {
	out := PricedCart{
		Lines:    make([]PricedLine, 0, len(entries)),
		Subtotal: decimal.Zero,
	}
	for _, entry := range entries {
		line := PricedLine{Entry: entry, Name: UnknownProductName, Price: decimal.Zero}
		if item, ok := catalog[entry.ItemID]; ok {
			line.Name = item.Title
			line.Price = item.Price
			if len(item.Images) > 0 {
				image := item.Images[0]
				line.Image = &image
			}
		}
		out.Subtotal = out.Subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
		out.Lines = append(out.Lines, line)
	}
	out.Subtotal = out.Subtotal.Round(2)
	return out
}
