package redis

import (
	"DevSpace/internal/pkg/consts"
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ViewCounter 基于 Redis Hash 的浏览量计数器，field 为文章 ID
type ViewCounter struct {
	rdb *redis.Client
}

func NewViewCounter(rdb *redis.Client) *ViewCounter {
	return &ViewCounter{rdb: rdb}
}

// Incr 浏览量加一，返回增加后的值
func (s *ViewCounter) Incr(ctx context.Context, articleID uint64) (int64, error) {
	return s.rdb.HIncrBy(ctx, consts.ArticleViewsKey, formatArticleID(articleID), 1).Result()
}

// Get 读取缓存中的浏览量。field 不存在时返回 ok=false，由调用方回源
func (s *ViewCounter) Get(ctx context.Context, articleID uint64) (int64, bool, error) {
	val, err := s.rdb.HGet(ctx, consts.ArticleViewsKey, formatArticleID(articleID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// Seed 用数据库中的值回填缓存。只在 field 不存在时写入，
// 并发请求先完成的 HIncrBy 不会被回填覆盖
func (s *ViewCounter) Seed(ctx context.Context, articleID uint64, count int64) error {
	return s.rdb.HSetNX(ctx, consts.ArticleViewsKey, formatArticleID(articleID), count).Err()
}

// All 返回缓存中全部文章的浏览量，同步任务用
func (s *ViewCounter) All(ctx context.Context) (map[uint64]int64, error) {
	entries, err := s.rdb.HGetAll(ctx, consts.ArticleViewsKey).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[uint64]int64, len(entries))
	for field, val := range entries {
		articleID, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		count, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		result[articleID] = count
	}
	return result, nil
}

func formatArticleID(articleID uint64) string {
	return strconv.FormatUint(articleID, 10)
}
