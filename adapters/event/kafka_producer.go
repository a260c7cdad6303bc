package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/quangdng/folio-hub/internal/config"
	"github.com/quangdng/folio-hub/pkg/logger"
)

const (
	TopicAssetEvents = "asset.events"
)

type KafkaProducerClient struct {
	AssetEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	assetWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicAssetEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		AssetEventsWriter: assetWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishAssetEvent(ctx context.Context, payload AssetEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal asset event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.AssetID.String()),
		Value: value,
	}
	if err := c.AssetEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish asset event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AssetEventsWriter != nil {
		c.AssetEventsWriter.Close()
	}
}
