package mq

import (
	"DevSpace/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// SyncPublisher 同步生产者封装，消息按 key 分区
type SyncPublisher struct {
	producer sarama.SyncProducer
}

func NewSyncPublisher(kafkaCfg config.KafkaConfig) (*SyncPublisher, error) {
	producer, err := sarama.NewSyncProducer(kafkaCfg.Brokers, newProducerConfig(kafkaCfg))
	if err != nil {
		return nil, err
	}
	return &SyncPublisher{producer: producer}, nil
}

// Publish 序列化后同步投递，返回前 broker 已确认
func (s *SyncPublisher) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "message published", "topic", topic, "partition", partition, "offset", offset)
	return nil
}

func (s *SyncPublisher) Close() error {
	return s.producer.Close()
}
