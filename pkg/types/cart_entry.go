package types

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CartEntry is a single line of a persisted cart.
type CartEntry struct {
	ItemID   uuid.UUID `json:"itemId"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// CartEntries is the ordered entry list stored in the carts.items column.
// No two entries share an ItemID.
type CartEntries []CartEntry

// Value marshals the entries into JSON. A nil list is stored as [].
func (c CartEntries) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	buf, err := json.Marshal([]CartEntry(c))
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes the JSON column into entries.
func (c *CartEntries) Scan(value any) error {
	raw, err := jsonBytes("cart entries", value)
	if err != nil || raw == nil {
		*c = nil
		return err
	}
	result := CartEntries{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*c = result
	return nil
}

// Find returns the index of the entry for itemID, or -1.
func (c CartEntries) Find(itemID uuid.UUID) int {
	for i, entry := range c {
		if entry.ItemID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a copy that can be mutated without touching c.
func (c CartEntries) Clone() CartEntries {
	out := make(CartEntries, len(c))
	copy(out, c)
	return out
}

// ItemIDs lists the distinct item ids in entry order.
func (c CartEntries) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c))
	for _, entry := range c {
		ids = append(ids, entry.ItemID)
	}
	return ids
}
