package media_storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/application/service"
	"github.com/quangdng/folio-hub/internal/config"
	"github.com/quangdng/folio-hub/internal/domain/asset"
	"github.com/quangdng/folio-hub/pkg/logger"
)

const ProviderCloudinary = "cloudinary"

type cloudinaryAdapter struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.BlobStore, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Connect Cloudinary successfully.")
	return &cloudinaryAdapter{cld: cld}, nil
}

func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, ownerID uuid.UUID, kind asset.Kind, filename string) (*service.UploadResult, error) {
	publicID := uuid.NewString()
	folder := fmt.Sprintf("users/%s/%s", ownerID.String(), string(kind))

	result, err := a.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload cloudinary: %w", err)
	}

	return &service.UploadResult{
		URL:      result.SecureURL,
		Name:     filename,
		Size:     int64(result.Bytes),
		Ref:      result.PublicID,
		Provider: ProviderCloudinary,
	}, nil
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, ref string) error {
	_, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: ref,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	return nil
}

// Client exposes the underlying cloudinary handle for the worker's
// transformation step. Upload call sites never need it.
func (a *cloudinaryAdapter) Client() *cloudinary.Cloudinary {
	return a.cld
}

type CloudinaryClientProvider interface {
	Client() *cloudinary.Cloudinary
}
