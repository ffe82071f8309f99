package event

import (
	"DevSpace/internal/pkg/logger"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var received []Event
	bus.Subscribe(NameArticleLike, func(ctx context.Context, e Event) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
	})

	bus.Start()
	bus.Publish(context.Background(), ArticleLikeEvent{ArticleID: 1, UserID: 2, IsAdd: true})
	bus.Publish(context.Background(), ArticleLikeEvent{ArticleID: 1, UserID: 3, IsAdd: false})
	bus.Close()

	require.Len(t, received, 2)
	first, ok := received[0].(ArticleLikeEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(1), first.ArticleID)
}

func TestBusKeepsOrderForSameName(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var got []uint64
	bus.Subscribe(NameArticleLike, func(ctx context.Context, e Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(ArticleLikeEvent).UserID)
	})

	bus.Start()
	for i := uint64(1); i <= 50; i++ {
		bus.Publish(context.Background(), ArticleLikeEvent{ArticleID: 1, UserID: i})
	}
	bus.Close()

	require.Len(t, got, 50)
	for i, id := range got {
		assert.Equal(t, uint64(i+1), id)
	}
}

func TestBusDropsPublishAfterClose(t *testing.T) {
	bus := NewBus()

	var count int
	bus.Subscribe(NameUserActivity, func(ctx context.Context, e Event) {
		count++
	})

	bus.Start()
	bus.Close()

	// 停机窗口内消费者可能还在发事件，不能 panic
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), UserActivityEvent{UserID: 1})
	})
	assert.Zero(t, count)
}

func TestBusIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewBus()

	var count int
	bus.Subscribe(NameArticleLike, func(ctx context.Context, e Event) {
		count++
	})

	bus.Start()
	bus.Publish(context.Background(), ArticleCommentEvent{ArticleID: 1, UserID: 2, Content: "hi"})
	bus.Close()

	assert.Zero(t, count)
}

func TestBusSurvivesHandlerPanic(t *testing.T) {
	bus := NewBus()

	var delivered int
	bus.Subscribe(NameUserActivity, func(ctx context.Context, e Event) {
		panic("boom")
	})
	bus.Subscribe(NameUserActivity, func(ctx context.Context, e Event) {
		delivered++
	})

	bus.Start()
	bus.Publish(context.Background(), UserActivityEvent{UserID: 1})
	bus.Close()

	assert.Equal(t, 1, delivered)
}

func TestBusPreservesTraceID(t *testing.T) {
	bus := NewBus()

	var got string
	bus.Subscribe(NameUserActivity, func(ctx context.Context, e Event) {
		if id, ok := ctx.Value(logger.TraceIDKey).(string); ok {
			got = id
		}
	})

	bus.Start()
	bus.Publish(logger.NewTraceContext("trace-42"), UserActivityEvent{UserID: 1})
	bus.Close()

	assert.Equal(t, "trace-42", got)
}
