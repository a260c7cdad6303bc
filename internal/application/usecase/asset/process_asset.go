package asset

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/quangdng/folio-hub/adapters/event"
	"github.com/quangdng/folio-hub/adapters/media_storage"
	"github.com/quangdng/folio-hub/internal/domain/asset"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

// ProcessAssetEventUseCase is the worker side of the upload pipeline: it
// finalizes a pending asset, deriving resized delivery URLs for images
// stored on cloudinary. Documents and remote-backend files have nothing to
// derive and are flipped to ready as-is.
type ProcessAssetEventUseCase struct {
	assetRepo  asset.Repository
	cloudinary media_storage.CloudinaryClientProvider
	logger     logger.Logger
}

func NewProcessAssetEventUseCase(r asset.Repository, c media_storage.CloudinaryClientProvider, log logger.Logger) *ProcessAssetEventUseCase {
	return &ProcessAssetEventUseCase{assetRepo: r, cloudinary: c, logger: log}
}

func (uc *ProcessAssetEventUseCase) Execute(ctx context.Context, payload event.AssetEventPayload) error {
	l := uc.logger.With(zap.String("asset_id", payload.AssetID.String()), zap.String("event_type", string(payload.EventType)))
	l.Info("Worker UseCase processing asset event")

	if payload.EventType != event.AssetEventTypeUploaded {
		l.Info("Ignoring non-upload asset event")
		return nil
	}

	a, err := uc.assetRepo.FindByID(ctx, payload.AssetID, payload.OwnerID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			l.Warn("Asset not found, skipping event")
			return nil
		}
		return apperror.NewInternal("failed to get asset", err)
	}

	if a.Status == asset.StatusReady {
		l.Info("Asset already in 'ready' state, skipping")
		return nil
	}

	if a.Kind.IsImage() && payload.Provider == media_storage.ProviderCloudinary {
		cld := uc.cloudinary.Client()
		if cld == nil {
			return apperror.NewInternal("could not get cloudinary client", nil)
		}

		imgAsset, err := cld.Image(payload.OriginalRef)
		if err != nil {
			return apperror.NewInternal("failed to create cloudinary asset", err)
		}

		imgAsset.Transformation = "c_limit,w_1200"
		mainURL, err := imgAsset.String()
		if err != nil {
			return apperror.NewInternal("failed to build main image URL", err)
		}

		imgAsset.Transformation = "c_fill,g_auto,w_400,h_400"
		thumbURL, err := imgAsset.String()
		if err != nil {
			return apperror.NewInternal("failed to build thumbnail URL", err)
		}

		a.URL = mainURL
		a.ThumbnailURL = &thumbURL
	}

	a.Status = asset.StatusReady

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		return apperror.NewInternal("failed to update asset to 'ready'", err)
	}

	l.Info("Successfully processed asset", zap.String("status", string(a.Status)))
	return nil
}
