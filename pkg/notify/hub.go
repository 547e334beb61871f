// Package notify provides an in-process publish/subscribe hub. Each hub is an
// explicit value owned by whoever constructs it; there is no package state.
package notify

import (
	"context"
	"sync"
)

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine and must not block.
type Handler[E any] func(ctx context.Context, event E)

// Hub fans events out to registered handlers.
type Hub[E any] struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]Handler[E]
	order    []uint64
}

// NewHub returns an empty hub.
func NewHub[E any]() *Hub[E] {
	return &Hub[E]{handlers: map[uint64]Handler[E]{}}
}

// Subscribe registers h and returns the function that removes it. The
// returned function is safe to call more than once.
func (h *Hub[E]) Subscribe(handler Handler[E]) (unsubscribe func()) {
	if h == nil || handler == nil {
		return func() {}
	}
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.handlers[id] = handler
	h.order = append(h.order, id)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub[E]) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.handlers, id)
	for i, candidate := range h.order {
		if candidate == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Publish delivers event to every current subscriber in subscription order.
// A nil hub drops the event.
func (h *Hub[E]) Publish(ctx context.Context, event E) {
	if h == nil {
		return
	}
	h.mu.RLock()
	targets := make([]Handler[E], 0, len(h.order))
	for _, id := range h.order {
		targets = append(targets, h.handlers[id])
	}
	h.mu.RUnlock()

	for _, handler := range targets {
		handler(ctx, event)
	}
}

// Len reports the number of active subscribers.
func (h *Hub[E]) Len() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}
