package asset

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangdng/folio-hub/adapters/event"
	"github.com/quangdng/folio-hub/internal/application/service"
	"github.com/quangdng/folio-hub/internal/domain/asset"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type UploadAssetUseCase struct {
	assetRepo   asset.Repository
	blobStore   service.BlobStore
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUploadAssetUseCase(
	r asset.Repository,
	b service.BlobStore,
	k *event.KafkaProducerClient,
	log logger.Logger,
) *UploadAssetUseCase {
	return &UploadAssetUseCase{assetRepo: r, blobStore: b, kafkaClient: k, logger: log}
}

type UploadAssetInput struct {
	OwnerID     uuid.UUID
	Kind        asset.Kind
	File        io.Reader
	FileName    string
	FileSize    int64
	ContentType string
}

type UploadAssetOutput struct {
	Asset *asset.Asset
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, input UploadAssetInput) (*UploadAssetOutput, error) {
	if !input.Kind.Valid() {
		return nil, apperror.NewInvalidInput("unknown asset kind", asset.ErrInvalidKind)
	}

	now := time.Now().UTC()
	newAsset := &asset.Asset{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Kind:        input.Kind,
		FileName:    input.FileName,
		FileSize:    input.FileSize,
		ContentType: input.ContentType,
		Status:      asset.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Size is rejected locally, before any network call.
	if err := newAsset.CheckSize(); err != nil {
		return nil, apperror.NewInvalidInput("file rejected before upload", err)
	}

	result, err := uc.blobStore.Upload(ctx, input.File, input.OwnerID, input.Kind, input.FileName)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload asset file", err)
	}

	newAsset.URL = result.URL
	newAsset.Provider = result.Provider
	if result.Size > 0 {
		newAsset.FileSize = result.Size
	}

	if err := uc.assetRepo.Save(ctx, newAsset); err != nil {
		go uc.blobStore.Delete(context.Background(), result.Ref)
		return nil, err
	}

	go func() {
		payload := event.AssetEventPayload{
			EventType:   event.AssetEventTypeUploaded,
			AssetID:     newAsset.ID,
			OwnerID:     newAsset.OwnerID,
			Kind:        newAsset.Kind,
			Provider:    newAsset.Provider,
			OriginalURL: result.URL,
			OriginalRef: result.Ref,
		}
		if err := uc.kafkaClient.PublishAssetEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'asset.uploaded' event", err, zap.String("asset_id", newAsset.ID.String()))
		}
	}()

	return &UploadAssetOutput{Asset: newAsset}, nil
}
