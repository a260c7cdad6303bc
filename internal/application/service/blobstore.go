package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/asset"
)

// UploadResult is what every blob backend reports back, regardless of which
// one served the request. Ref is the backend's own handle for the stored
// object (public ID, remote path) and is only meaningful to that backend.
type UploadResult struct {
	URL      string
	Name     string
	Size     int64
	Ref      string
	Provider string
}

type BlobStore interface {
	Upload(ctx context.Context, file io.Reader, ownerID uuid.UUID, kind asset.Kind, filename string) (*UploadResult, error)
	Delete(ctx context.Context, ref string) error
}
