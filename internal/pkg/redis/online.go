package redis

import (
	"DevSpace/internal/pkg/consts"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// 在线状态保留两天，覆盖跨天访问的场景
const onlineUserTTL = 48 * time.Hour

// OnlineUserStore 记录用户最近一次活跃时间
type OnlineUserStore struct {
	rdb *redis.Client
}

func NewOnlineUserStore(rdb *redis.Client) *OnlineUserStore {
	return &OnlineUserStore{rdb: rdb}
}

// Touch 刷新用户活跃时间并续期
func (s *OnlineUserStore) Touch(ctx context.Context, userID uint64) error {
	key := onlineUserKey(userID)
	return s.rdb.Set(ctx, key, time.Now().Unix(), onlineUserTTL).Err()
}

// LastActive 返回用户最近活跃时间，没有记录时返回 ok=false
func (s *OnlineUserStore) LastActive(ctx context.Context, userID uint64) (time.Time, bool, error) {
	val, err := s.rdb.Get(ctx, onlineUserKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(ts, 0), true, nil
}

// Logout 用户登出时清除在线记录
func (s *OnlineUserStore) Logout(ctx context.Context, userID uint64) error {
	return s.rdb.Del(ctx, onlineUserKey(userID)).Err()
}

func onlineUserKey(userID uint64) string {
	return consts.OnlineUserKey + strconv.FormatUint(userID, 10)
}
