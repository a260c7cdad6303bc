package media_storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/application/service"
	"github.com/quangdng/folio-hub/internal/config"
	"github.com/quangdng/folio-hub/internal/domain/asset"
)

const ProviderRemote = "remote"

// remoteUploadAdapter talks to the legacy PHP upload endpoint: a multipart
// form POST that answers {success, url, path, name, size, type, error}.
type remoteUploadAdapter struct {
	endpoint string
	client   *http.Client
}

func NewRemoteUploadAdapter(cfg config.Config) (service.BlobStore, error) {
	if cfg.Upload.RemoteEndpoint == "" {
		return nil, fmt.Errorf("upload remote_endpoint has not config")
	}
	return &remoteUploadAdapter{
		endpoint: cfg.Upload.RemoteEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type remoteUploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Path    string `json:"path"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Type    string `json:"type"`
	Error   string `json:"error"`
}

func (a *remoteUploadAdapter) Upload(ctx context.Context, file io.Reader, ownerID uuid.UUID, kind asset.Kind, filename string) (*service.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file into multipart body: %w", err)
	}
	if err := writer.WriteField("userId", ownerID.String()); err != nil {
		return nil, fmt.Errorf("failed to write userId field: %w", err)
	}
	if err := writer.WriteField("fileType", string(kind)); err != nil {
		return nil, fmt.Errorf("failed to write fileType field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var result remoteUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "upload failed"
		}
		return nil, fmt.Errorf("remote upload rejected: %s", msg)
	}

	return &service.UploadResult{
		URL:      result.URL,
		Name:     result.Name,
		Size:     result.Size,
		Ref:      result.Path,
		Provider: ProviderRemote,
	}, nil
}

func (a *remoteUploadAdapter) Delete(ctx context.Context, ref string) error {
	payload, err := json.Marshal(map[string]string{"filePath": ref})
	if err != nil {
		return fmt.Errorf("failed to marshal delete payload: %w", err)
	}

	deleteEndpoint := a.endpoint[:len(a.endpoint)-len("upload.php")] + "delete.php"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deleteEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	var result remoteUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode delete response: %w", err)
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "delete failed"
		}
		return fmt.Errorf("remote delete rejected: %s", msg)
	}
	return nil
}
