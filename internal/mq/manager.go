package mq

import (
	"DevSpace/internal/api/config"
	"DevSpace/internal/event"
	"DevSpace/internal/pkg/consts"
	"DevSpace/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理互动消息的三个消费组
type ConsumerManager struct {
	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler

	collectsConsumer sarama.ConsumerGroup
	collectsHandler  sarama.ConsumerGroupHandler

	commentsConsumer sarama.ConsumerGroup
	commentsHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	articleRepo repository.ArticleRepo,
	interactionRepo repository.InteractionRepo,
	commentRepo repository.CommentRepo,
	bus *event.Bus,
	locker InteractionLocker,
) (*ConsumerManager, error) {
	saramaCfg := newConsumerConfig(cfg.Kafka)

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikeConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	likesHandler := NewLikesHandler(interactionRepo, bus, locker)

	collectsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCollectConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	collectsHandler := NewCollectsHandler(interactionRepo, bus, locker)

	commentsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCommentConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	commentsHandler := NewCommentsHandler(articleRepo, commentRepo, bus)

	return &ConsumerManager{
		likesConsumer:    likesConsumer,
		likesHandler:     likesHandler,
		collectsConsumer: collectsConsumer,
		collectsHandler:  collectsHandler,
		commentsConsumer: commentsConsumer,
		commentsHandler:  commentsHandler,
	}, nil
}

// Start 启动所有消费者，阻塞到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		log.Info("like consumer started", "topic", consts.TopicArticleLike)
		for {
			if err := m.likesConsumer.Consume(ctx, []string{consts.TopicArticleLike}, m.likesHandler); err != nil {
				log.Error("error from like consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		log.Info("collect consumer started", "topic", consts.TopicArticleCollect)
		for {
			if err := m.collectsConsumer.Consume(ctx, []string{consts.TopicArticleCollect}, m.collectsHandler); err != nil {
				log.Error("error from collect consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		log.Info("comment consumer started", "topic", consts.TopicArticleComment)
		for {
			if err := m.commentsConsumer.Consume(ctx, []string{consts.TopicArticleComment}, m.commentsHandler); err != nil {
				log.Error("error from comment consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("consumer manager shutting down...")

	if err := m.likesConsumer.Close(); err != nil {
		log.Error("failed to close like consumer", "err", err)
	}
	if err := m.collectsConsumer.Close(); err != nil {
		log.Error("failed to close collect consumer", "err", err)
	}
	if err := m.commentsConsumer.Close(); err != nil {
		log.Error("failed to close comment consumer", "err", err)
	}

	return nil
}
