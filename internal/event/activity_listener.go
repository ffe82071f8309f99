package event

import (
	"context"
	log "log/slog"
)

// ActivityRecorder 行为流水落库
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID uint64, activityType string, targetID uint64, extraData string) error
}

// ActivityListener 订阅行为事件并落库，失败只记录不中断
type ActivityListener struct {
	recorder ActivityRecorder
}

func NewActivityListener(recorder ActivityRecorder) *ActivityListener {
	return &ActivityListener{recorder: recorder}
}

func (s *ActivityListener) Register(bus *Bus) {
	bus.Subscribe(NameUserActivity, s.onActivity)
}

func (s *ActivityListener) onActivity(ctx context.Context, e Event) {
	ev, ok := e.(UserActivityEvent)
	if !ok {
		return
	}
	if err := s.recorder.RecordActivity(ctx, ev.UserID, ev.ActivityType, ev.TargetID, ev.ExtraData); err != nil {
		log.ErrorContext(ctx, "record user activity failed", "userId", ev.UserID, "type", ev.ActivityType, "err", err)
	}
}
