package mq

import (
	"DevSpace/internal/pkg/logger"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// 串行化同一 (文章, 用户) 对的互动处理
const (
	lockTTL     = 10 * time.Second
	lockRetries = 25
)

var errLockNotAcquired = errors.New("interaction lock not acquired")

// InteractionLocker 互动锁，生产环境由 Redis 实现
type InteractionLocker interface {
	TryLock(ctx context.Context, articleID, userID uint64, expiration time.Duration, retryTimes int) (string, bool, error)
	Unlock(ctx context.Context, articleID, userID uint64, token string)
}

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// consumeEachMessage 逐条消费。无论业务逻辑成败位点都向前标记，
// 失败的消息记录日志后丢弃，不回流重投
func consumeEachMessage(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	for msg := range claim.Messages() {
		ctx := logger.NewTraceContext(uuid.NewString())

		if err := logic(ctx, msg); err != nil {
			log.ErrorContext(ctx, "message rejected",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "err", err)
		}
		session.MarkMessage(msg, "")

		if session.Context().Err() != nil {
			return nil
		}
	}
	return nil
}
