package mq

import (
	"DevSpace/internal/model"
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likeMsg(body string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Value: []byte(body)}
}

func TestLikeAddCreatesRecordAndActivity(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	capture := newCaptureBus()
	handler := NewLikesHandler(repo, capture.bus, locker)

	err := handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`))
	require.NoError(t, err)

	exists, _ := repo.CheckLikeExists(context.Background(), 1, 2)
	assert.True(t, exists)

	activities := capture.drain()
	require.Len(t, activities, 1)
	assert.Equal(t, model.ActivityLikeArticle, activities[0].ActivityType)
	assert.Equal(t, uint64(2), activities[0].UserID)
	assert.Equal(t, uint64(1), activities[0].TargetID)
}

func TestLikeDuplicateAddIgnored(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	capture := newCaptureBus()
	handler := NewLikesHandler(repo, capture.bus, locker)

	require.NoError(t, handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`)))
	require.NoError(t, handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`)))

	count, _ := repo.GetLikeCount(context.Background(), 1)
	assert.Equal(t, int64(1), count)

	// 重复点赞不再产生行为事件
	assert.Len(t, capture.drain(), 1)
}

func TestLikeToggle(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	capture := newCaptureBus()
	defer capture.drain()
	handler := NewLikesHandler(repo, capture.bus, locker)

	require.NoError(t, handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`)))
	require.NoError(t, handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":false}`)))

	exists, _ := repo.CheckLikeExists(context.Background(), 1, 2)
	assert.False(t, exists)

	require.NoError(t, handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`)))
	exists, _ = repo.CheckLikeExists(context.Background(), 1, 2)
	assert.True(t, exists)
}

func TestLikeRemoveAbsentIsNoop(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	capture := newCaptureBus()
	handler := NewLikesHandler(repo, capture.bus, locker)

	err := handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":false}`))
	require.NoError(t, err)
	assert.Empty(t, capture.drain())
}

func TestLikeLockNotAcquired(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	locker.denyAcquire = true
	capture := newCaptureBus()
	handler := NewLikesHandler(repo, capture.bus, locker)

	err := handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`))
	assert.ErrorIs(t, err, errLockNotAcquired)

	exists, _ := repo.CheckLikeExists(context.Background(), 1, 2)
	assert.False(t, exists)
	assert.Empty(t, capture.drain())
}

func TestLikeLockReleasedAfterLogic(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	capture := newCaptureBus()
	defer capture.drain()
	handler := NewLikesHandler(repo, capture.bus, locker)

	require.NoError(t, handler.logic(context.Background(), likeMsg(`{"articleId":1,"userId":2,"isAdd":true}`)))

	assert.Equal(t, 1, locker.unlocks)
	assert.Empty(t, locker.held)
}

func TestLikeMalformedPayloadRejected(t *testing.T) {
	repo := newFakeInteractionRepo()
	locker := newFakeLocker()
	capture := newCaptureBus()
	handler := NewLikesHandler(repo, capture.bus, locker)

	err := handler.logic(context.Background(), likeMsg(`{not json`))
	assert.Error(t, err)
	assert.Empty(t, capture.drain())
}
