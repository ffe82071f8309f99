package redis

import (
	"DevSpace/internal/pkg/consts"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// Locker 基于 SetNX 的互斥锁，用于多副本消费者串行处理同一 (文章, 用户) 对
type Locker struct {
	rdb *redis.Client
}

func NewLocker(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

// TryLock 尝试获取锁，成功时返回用于释放锁的令牌
func (s *Locker) TryLock(ctx context.Context, articleID, userID uint64, expiration time.Duration, retryTimes int) (string, bool, error) {
	key := interactionLockKey(articleID, userID)
	token := uuid.NewString()

	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		success, err := s.rdb.SetNX(ctx, key, token, expiration).Result()
		if err != nil {
			return "", false, err
		}
		if success {
			return token, true, nil
		}
		time.Sleep(time.Millisecond * 200)
	}
	return "", false, nil
}

// Unlock 校验令牌后释放锁，令牌不匹配时不做任何操作
func (s *Locker) Unlock(ctx context.Context, articleID, userID uint64, token string) {
	s.rdb.Eval(ctx, unlockScript, []string{interactionLockKey(articleID, userID)}, token)
}

func interactionLockKey(articleID, userID uint64) string {
	return fmt.Sprintf("%s%d:%d", consts.InteractionLock, articleID, userID)
}
