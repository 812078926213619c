package kafka

import (
	"Melodia/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler

	clicksConsumer sarama.ConsumerGroup
	clicksHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikeConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	clicksConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaClickConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		likesConsumer:  likesConsumer,
		likesHandler:   NewLikesHandler(),
		clicksConsumer: clicksConsumer,
		clicksHandler:  NewClicksHandler(),
	}, nil
}

// Start 启动所有消费者，阻塞到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaLikeConsumer.Topic
		log.Info("Like consumer started", "topic", topic)
		for {
			if err := m.likesConsumer.Consume(ctx, []string{topic}, m.likesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaClickConsumer.Topic
		log.Info("Click consumer started", "topic", topic)
		for {
			if err := m.clicksConsumer.Consume(ctx, []string{topic}, m.clicksHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.likesConsumer.Close(); err != nil {
		log.Error("Failed to close like consumer", "err", err)
	}
	if err := m.clicksConsumer.Close(); err != nil {
		log.Error("Failed to close click consumer", "err", err)
	}

	return nil
}
