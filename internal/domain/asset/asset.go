package asset

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindProfilePicture Kind = "profile_picture"
	KindCV             Kind = "cv"
	KindProjectImage   Kind = "project_image"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

type Asset struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Kind         Kind      `json:"kind"`
	Provider     string    `json:"provider"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrInvalidKind   = errors.New("invalid asset kind")
	ErrFileTooLarge  = errors.New("file exceeds the size limit for its kind")
)

const (
	maxImageBytes    = 5 << 20
	maxDocumentBytes = 10 << 20
)

func (k Kind) Valid() bool {
	switch k {
	case KindProfilePicture, KindCV, KindProjectImage:
		return true
	}
	return false
}

// IsImage reports whether the kind is served from the image backend; the
// remaining kinds go to the document backend.
func (k Kind) IsImage() bool {
	return k == KindProfilePicture || k == KindProjectImage
}

// CheckSize rejects oversized files before any network call.
func (a *Asset) CheckSize() error {
	limit := int64(maxDocumentBytes)
	if a.Kind.IsImage() {
		limit = maxImageBytes
	}
	if a.FileSize > limit {
		return ErrFileTooLarge
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Asset, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Asset, error)
}
