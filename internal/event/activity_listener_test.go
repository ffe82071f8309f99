package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu       sync.Mutex
	err      error
	recorded []UserActivityEvent
}

func (f *fakeRecorder) RecordActivity(_ context.Context, userID uint64, activityType string, targetID uint64, extraData string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, UserActivityEvent{
		UserID:       userID,
		ActivityType: activityType,
		TargetID:     targetID,
		ExtraData:    extraData,
	})
	return nil
}

func TestActivityListenerRecords(t *testing.T) {
	recorder := &fakeRecorder{}
	bus := NewBus()
	NewActivityListener(recorder).Register(bus)
	bus.Start()

	bus.Publish(context.Background(), UserActivityEvent{
		UserID:       3,
		ActivityType: "LIKE_ARTICLE",
		TargetID:     9,
	})
	bus.Close()

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, uint64(3), recorder.recorded[0].UserID)
	assert.Equal(t, uint64(9), recorder.recorded[0].TargetID)
}

func TestActivityListenerAbsorbsFailure(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("db down")}
	bus := NewBus()
	NewActivityListener(recorder).Register(bus)
	bus.Start()

	// 落库失败只记录日志，事件被吞掉
	bus.Publish(context.Background(), UserActivityEvent{UserID: 3, ActivityType: "COMMENT", TargetID: 9})
	bus.Close()

	assert.Empty(t, recorder.recorded)
}
