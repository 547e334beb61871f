package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

// ListFilters describe the supported filter knobs for the browse endpoint.
type ListFilters struct {
	Query      string
	Categories []enums.ItemCategory
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       enums.ItemSort
}

// ListItemsInput captures the inputs needed to paginate/filter items.
type ListItemsInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ItemListResult is the payload of GET /api/items.
type ItemListResult struct {
	Items []ItemDTO       `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

type listQuery struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ParseCategoryList splits a comma-separated category filter. Blank entries are skipped.
func ParseCategoryList(raw string) ([]enums.ItemCategory, error) {
	var out []enums.ItemCategory
	seen := map[enums.ItemCategory]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		category, err := enums.ParseItemCategory(part)
		if err != nil {
			return nil, err
		}
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	return out, nil
}

func (f ListFilters) validate() error {
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return fmt.Errorf("minPrice must be non-negative")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return fmt.Errorf("maxPrice must be non-negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return fmt.Errorf("minPrice cannot exceed maxPrice")
	}
	if f.Sort != "" && !f.Sort.IsValid() {
		return fmt.Errorf("invalid sort option %q", f.Sort)
	}
	for _, c := range f.Categories {
		if !c.IsValid() {
			return fmt.Errorf("invalid category %q", c)
		}
	}
	return nil
}
