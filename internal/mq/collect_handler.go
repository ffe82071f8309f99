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

type CollectsHandler struct {
	interactionRepo repository.InteractionRepo
	bus             *event.Bus
	locker          InteractionLocker
}

func NewCollectsHandler(interactionRepo repository.InteractionRepo, bus *event.Bus, locker InteractionLocker) *CollectsHandler {
	return &CollectsHandler{
		interactionRepo: interactionRepo,
		bus:             bus,
		locker:          locker,
	}
}

func (s *CollectsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("article collect consumer setup")
	return nil
}

func (s *CollectsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("article collect consumer cleanup")
	return nil
}

func (s *CollectsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-collect consume claim")
	return consumeEachMessage(session, claim, s.logic)
}

func (s *CollectsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var m dto.CollectMessage
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

	exists, err := s.interactionRepo.CheckCollectExists(ctx, m.ArticleID, m.UserID)
	if err != nil {
		return err
	}

	if m.IsAdd {
		if exists {
			log.InfoContext(ctx, "duplicate collect ignored", "articleId", m.ArticleID, "userId", m.UserID)
			return nil
		}
		collect := &model.ArticleCollect{ArticleID: m.ArticleID, UserID: m.UserID}
		if err := s.interactionRepo.CreateCollect(ctx, collect); err != nil {
			return err
		}
		s.bus.Publish(ctx, event.UserActivityEvent{
			UserID:       m.UserID,
			ActivityType: model.ActivityCollectArticle,
			TargetID:     m.ArticleID,
		})
		log.InfoContext(ctx, "article collected", "articleId", m.ArticleID, "userId", m.UserID)
		return nil
	}

	if !exists {
		return nil
	}
	if err := s.interactionRepo.DeleteCollect(ctx, m.ArticleID, m.UserID); err != nil {
		return err
	}
	log.InfoContext(ctx, "article uncollected", "articleId", m.ArticleID, "userId", m.UserID)
	return nil
}
