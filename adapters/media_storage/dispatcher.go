package media_storage

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/application/service"
	"github.com/quangdng/folio-hub/internal/domain/asset"
)

// Dispatcher routes uploads to one of two backends by asset kind: images go
// to the bucket-style store, documents to the remote endpoint. Call sites
// hold a single BlobStore and never learn which backend served an asset.
type Dispatcher struct {
	images    service.BlobStore
	documents service.BlobStore
}

func NewDispatcher(images, documents service.BlobStore) *Dispatcher {
	return &Dispatcher{images: images, documents: documents}
}

func (d *Dispatcher) backendFor(kind asset.Kind) service.BlobStore {
	if kind.IsImage() {
		return d.images
	}
	return d.documents
}

func (d *Dispatcher) Upload(ctx context.Context, file io.Reader, ownerID uuid.UUID, kind asset.Kind, filename string) (*service.UploadResult, error) {
	return d.backendFor(kind).Upload(ctx, file, ownerID, kind, filename)
}

// Delete tries both backends; the ref is only meaningful to the one that
// stored it, so the first success wins.
func (d *Dispatcher) Delete(ctx context.Context, ref string) error {
	if err := d.images.Delete(ctx, ref); err == nil {
		return nil
	}
	return d.documents.Delete(ctx, ref)
}
