package enums

import "fmt"

// ItemSort is the ordering applied to catalog listings.
type ItemSort string

const (
	ItemSortNewest     ItemSort = "newest"
	ItemSortPriceAsc   ItemSort = "price_asc"
	ItemSortPriceDesc  ItemSort = "price_desc"
	ItemSortPopularity ItemSort = "popularity"
)

var validItemSorts = []ItemSort{
	ItemSortNewest,
	ItemSortPriceAsc,
	ItemSortPriceDesc,
	ItemSortPopularity,
}

func (s ItemSort) String() string {
	return string(s)
}

func (s ItemSort) IsValid() bool {
	for _, candidate := range validItemSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseItemSort converts raw input into an ItemSort. Empty input yields newest.
func ParseItemSort(value string) (ItemSort, error) {
	if value == "" {
		return ItemSortNewest, nil
	}
	for _, candidate := range validItemSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort %q", value)
}

// OrderClause maps the sort onto SQL ordering. Ties break on id for stable pages.
func (s ItemSort) OrderClause() string {
	switch s {
	case ItemSortPriceAsc:
		return "price ASC, id ASC"
	case ItemSortPriceDesc:
		return "price DESC, id ASC"
	case ItemSortPopularity:
		return "rating DESC, review_count DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}
