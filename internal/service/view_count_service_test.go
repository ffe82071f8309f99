package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementIsMonotonic(t *testing.T) {
	counter := newFakeCounterStore()
	svc := NewViewCountService(counter, newFakeViewCountRepo())

	ctx := context.Background()
	var last int64
	for i := 0; i < 10; i++ {
		count, err := svc.Increment(ctx, 1)
		require.NoError(t, err)
		assert.Greater(t, count, last)
		last = count
	}
	assert.Equal(t, int64(10), last)
}

func TestIncrementSeedsFromDatabaseOnColdCache(t *testing.T) {
	counter := newFakeCounterStore()
	repo := newFakeViewCountRepo()
	repo.counts[1] = 100
	svc := NewViewCountService(counter, repo)

	count, err := svc.Increment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(101), count)
}

func TestGetViewCountFallsBackAndSeeds(t *testing.T) {
	counter := newFakeCounterStore()
	repo := newFakeViewCountRepo()
	repo.counts[1] = 42
	svc := NewViewCountService(counter, repo)

	ctx := context.Background()
	count, err := svc.GetViewCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)

	// 回源后缓存已回填
	cached, ok, err := counter.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), cached)
}

func TestIncrementColdSeedKeepsConcurrentIncrement(t *testing.T) {
	counter := newFakeCounterStore()
	repo := newFakeViewCountRepo()
	repo.counts[1] = 100
	svc := NewViewCountService(counter, repo).(*ViewCountServiceImpl)

	ctx := context.Background()

	// 两个请求同时读到缓存未命中，先到的已完成回填加一
	count, err := svc.Increment(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(101), count)

	// 后到的此时才回填，不能覆盖掉已加上的那一次
	require.NoError(t, svc.seedFromDB(ctx, 1))
	count, err = counter.Incr(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(102), count)
}

func TestGetViewCountUnknownArticle(t *testing.T) {
	counter := newFakeCounterStore()
	svc := NewViewCountService(counter, newFakeViewCountRepo())

	ctx := context.Background()
	count, err := svc.GetViewCount(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, count)

	// 零值也回填，后续读命中缓存不再回源
	cached, ok, err := counter.Get(ctx, 404)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, cached)
}

func TestSyncToDatabaseConverges(t *testing.T) {
	counter := newFakeCounterStore()
	repo := newFakeViewCountRepo()
	repo.counts[1] = 5
	svc := NewViewCountService(counter, repo)

	ctx := context.Background()
	counter.counts[1] = 20
	counter.counts[2] = 7

	require.NoError(t, svc.SyncToDatabase(ctx))

	assert.Equal(t, int64(20), repo.counts[1])
	assert.Equal(t, int64(7), repo.counts[2])

	// 再跑一次是幂等的
	require.NoError(t, svc.SyncToDatabase(ctx))
	assert.Equal(t, int64(20), repo.counts[1])
}

func TestSyncToDatabaseIsolatesFailures(t *testing.T) {
	counter := newFakeCounterStore()
	repo := newFakeViewCountRepo()
	repo.failOn[1] = true
	svc := NewViewCountService(counter, repo)

	counter.counts[1] = 10
	counter.counts[2] = 20
	counter.counts[3] = 30

	require.NoError(t, svc.SyncToDatabase(context.Background()))

	_, ok := repo.counts[1]
	assert.False(t, ok)
	assert.Equal(t, int64(20), repo.counts[2])
	assert.Equal(t, int64(30), repo.counts[3])
}
