package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seekreviews/internal/config"
	"seekreviews/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 目录事件类型
const (
	EntityMovie = "movie"
	EntityBook  = "book"

	ActionUpsert = "upsert"
	ActionDelete = "delete"
)

// CatalogEvent 目录变更消息体，驱动搜索索引同步
type CatalogEvent struct {
	Entity   string `json:"entity"`
	EntityID int64  `json:"entity_id"`
	Action   string `json:"action"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendCatalogEvent 发送目录变更事件
func SendCatalogEvent(ctx context.Context, topic string, event *CatalogEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("%s-%d", event.Entity, event.EntityID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send catalog event: %w", err)
	}

	logger.Debug("Catalog event sent",
		zap.String("entity", event.Entity),
		zap.Int64("entity_id", event.EntityID),
		zap.String("action", event.Action),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
