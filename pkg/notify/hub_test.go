package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribersInOrder(t *testing.T) {
	hub := NewHub[string]()
	var got []string
	hub.Subscribe(func(_ context.Context, e string) { got = append(got, "a:"+e) })
	hub.Subscribe(func(_ context.Context, e string) { got = append(got, "b:"+e) })

	hub.Publish(context.Background(), "added")

	assert.Equal(t, []string{"a:added", "b:added"}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub[int]()
	var calls int
	unsubscribe := hub.Subscribe(func(context.Context, int) { calls++ })
	require.Equal(t, 1, hub.Len())

	hub.Publish(context.Background(), 1)
	unsubscribe()
	unsubscribe()
	hub.Publish(context.Background(), 2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hub.Len())
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	hub := NewHub[int]()
	var second int
	var unsubscribeFirst func()
	unsubscribeFirst = hub.Subscribe(func(context.Context, int) { unsubscribeFirst() })
	hub.Subscribe(func(context.Context, int) { second++ })

	hub.Publish(context.Background(), 1)
	hub.Publish(context.Background(), 2)

	assert.Equal(t, 2, second)
	assert.Equal(t, 1, hub.Len())
}

func TestNilHubIsInert(t *testing.T) {
	var hub *Hub[int]
	hub.Publish(context.Background(), 1)
	hub.Subscribe(func(context.Context, int) {})()
	assert.Equal(t, 0, hub.Len())
}

func TestConcurrentSubscribeAndPublish(t *testing.T) {
	hub := NewHub[int]()
	var mu sync.Mutex
	total := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := hub.Subscribe(func(_ context.Context, v int) {
				mu.Lock()
				total += v
				mu.Unlock()
			})
			hub.Publish(context.Background(), 1)
			unsubscribe()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Len())
	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, total, 20)
}
