package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/notify"
)

// EventType names a cart change.
type EventType string

const (
	EventItemAdded   EventType = "item_added"
	EventItemUpdated EventType = "item_updated"
	EventItemRemoved EventType = "item_removed"
	EventCartCleared EventType = "cart_cleared"
	EventCartMerged  EventType = "cart_merged"
)

// Event is published after a cart write commits.
type Event struct {
	Type     EventType
	CartID   uuid.UUID
	Identity Identity
	// ItemID is uuid.Nil for cart-wide events.
	ItemID uuid.UUID
	// Units is the number of item units the event moved.
	Units int
	At    time.Time
}

// Hub is the cart event hub.
type Hub = notify.Hub[Event]

// NewHub returns an empty cart event hub.
func NewHub() *Hub {
	return notify.NewHub[Event]()
}

type eventObserver interface {
	ObserveEvent(eventType, identity string, units int)
}

// MetricsSubscriber forwards events to the cart counters.
func MetricsSubscriber(m eventObserver) notify.Handler[Event] {
	return func(_ context.Context, e Event) {
		m.ObserveEvent(string(e.Type), e.Identity.Kind(), e.Units)
	}
}

// LogSubscriber writes one debug line per event.
func LogSubscriber(logg *logger.Logger) notify.Handler[Event] {
	return func(ctx context.Context, e Event) {
		fields := map[string]any{
			"event":    string(e.Type),
			"cart_id":  e.CartID.String(),
			"identity": e.Identity.Kind(),
			"units":    e.Units,
		}
		if e.ItemID != uuid.Nil {
			fields["item_id"] = e.ItemID.String()
		}
		logg.Debug(logg.WithFields(ctx, fields), "cart event")
	}
}
