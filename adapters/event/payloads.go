package event

import (
	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/asset"
)

type AssetEventType string

const (
	AssetEventTypeUploaded AssetEventType = "asset.uploaded"
	AssetEventTypeDeleted  AssetEventType = "asset.deleted"
)

type AssetEventPayload struct {
	EventType   AssetEventType `json:"event_type"`
	AssetID     uuid.UUID      `json:"asset_id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Kind        asset.Kind     `json:"kind"`
	Provider    string         `json:"provider"`
	OriginalURL string         `json:"original_url"`
	OriginalRef string         `json:"original_ref"`
}
