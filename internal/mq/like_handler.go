package mq

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/event"
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

type LikesHandler struct {
	interactionRepo repository.InteractionRepo
	bus             *event.Bus
	locker          InteractionLocker
}

func NewLikesHandler(interactionRepo repository.InteractionRepo, bus *event.Bus, locker InteractionLocker) *LikesHandler {
	return &LikesHandler{
		interactionRepo: interactionRepo,
		bus:             bus,
		locker:          locker,
	}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("article like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("article like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	return consumeEachMessage(session, claim, s.logic)
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var m dto.LikeMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return err
	}

	token, ok, err := s.locker.TryLock(ctx, m.ArticleID, m.UserID, lockTTL, lockRetries)
	if err != nil {
		return err
	}
	if !ok {
		return errLockNotAcquired
	}
	defer s.locker.Unlock(ctx, m.ArticleID, m.UserID, token)

	exists, err := s.interactionRepo.CheckLikeExists(ctx, m.ArticleID, m.UserID)
	if err != nil {
		return err
	}

	if m.IsAdd {
		if exists {
			// 重复点赞直接吞掉
			log.InfoContext(ctx, "duplicate like ignored", "articleId", m.ArticleID, "userId", m.UserID)
			return nil
		}
		like := &model.ArticleLike{ArticleID: m.ArticleID, UserID: m.UserID}
		if err := s.interactionRepo.CreateLike(ctx, like); err != nil {
			return err
		}
		s.bus.Publish(ctx, event.UserActivityEvent{
			UserID:       m.UserID,
			ActivityType: model.ActivityLikeArticle,
			TargetID:     m.ArticleID,
		})
		log.InfoContext(ctx, "article liked", "articleId", m.ArticleID, "userId", m.UserID)
		return nil
	}

	if !exists {
		return nil
	}
	if err := s.interactionRepo.DeleteLike(ctx, m.ArticleID, m.UserID); err != nil {
		return err
	}
	log.InfoContext(ctx, "article unliked", "articleId", m.ArticleID, "userId", m.UserID)
	return nil
}
