package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/quangdng/folio-hub/adapters/event"
	"github.com/quangdng/folio-hub/adapters/media_storage"
	"github.com/quangdng/folio-hub/adapters/persistence"
	assetUC "github.com/quangdng/folio-hub/internal/application/usecase/asset"
	"github.com/quangdng/folio-hub/internal/config"
	"github.com/quangdng/folio-hub/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Folio Hub Worker...")

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Cloudinary
	imageStore, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize image store", err)
	}
	cldProvider, ok := imageStore.(media_storage.CloudinaryClientProvider)
	if !ok {
		appLogger.Fatal("Image store does not expose a cloudinary client", nil)
	}

	// Repositories
	assetRepo := persistence.NewPostgresAssetRepo(dbPool, appLogger)

	// Worker Use Case
	processAssetEventUC := assetUC.NewProcessAssetEventUseCase(assetRepo, cldProvider, appLogger)

	// Kafka Consumer
	assetConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicAssetEvents,
		GroupID:  "asset-processor-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer assetConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicAssetEvents))

	ctx := context.Background()
	for {
		msg, err := assetConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.AssetEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(assetConsumer, msg, appLogger)
			continue
		}

		appLogger.Info("Processing event",
			zap.String("event_type", string(payload.EventType)),
			zap.String("asset_id", payload.AssetID.String()),
		)

		if err := processAssetEventUC.Execute(ctx, payload); err != nil {
			// Left uncommitted so the message is redelivered.
			appLogger.Error("Failed to process asset event", err, zap.String("asset_id", payload.AssetID.String()))
			continue
		}

		commitMessage(assetConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
