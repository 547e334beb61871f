package enums

import "fmt"

// ItemCategory represents the fixed set of catalog categories.
type ItemCategory string

const (
	ItemCategoryElectronics ItemCategory = "Electronics"
	ItemCategoryClothing    ItemCategory = "Clothing"
	ItemCategoryBooks       ItemCategory = "Books"
	ItemCategoryHomeGarden  ItemCategory = "Home & Garden"
	ItemCategorySports      ItemCategory = "Sports"
	ItemCategoryBeauty      ItemCategory = "Beauty"
	ItemCategoryAutomotive  ItemCategory = "Automotive"
)

var validItemCategories = []ItemCategory{
	ItemCategoryElectronics,
	ItemCategoryClothing,
	ItemCategoryBooks,
	ItemCategoryHomeGarden,
	ItemCategorySports,
	ItemCategoryBeauty,
	ItemCategoryAutomotive,
}

// String implements fmt.Stringer.
func (c ItemCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ItemCategory.
func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCategory converts raw input into an ItemCategory. Matching is exact.
func ParseItemCategory(value string) (ItemCategory, error) {
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

// ItemCategories returns the categories in display order.
func ItemCategories() []ItemCategory {
	out := make([]ItemCategory, len(validItemCategories))
	copy(out, validItemCategories)
	return out
}
