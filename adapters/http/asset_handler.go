package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assetUC "github.com/quangdng/folio-hub/internal/application/usecase/asset"
	"github.com/quangdng/folio-hub/internal/domain/asset"
)

type AssetHandler struct {
	uploadAssetUseCase *assetUC.UploadAssetUseCase
}

func NewAssetHandler(uc *assetUC.UploadAssetUseCase) *AssetHandler {
	return &AssetHandler{uploadAssetUseCase: uc}
}

// UploadAsset accepts a multipart form with 'file' and 'kind' fields. The
// response carries the asset in 'pending' state; the worker flips it to
// 'ready' once post-processing lands.
func (h *AssetHandler) UploadAsset(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	kind := asset.Kind(c.PostForm("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'kind' must be one of profile_picture, cv, project_image"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file cannot open"})
		return
	}
	defer file.Close()

	output, err := h.uploadAssetUseCase.Execute(c.Request.Context(), assetUC.UploadAssetInput{
		OwnerID:     ownerID,
		Kind:        kind,
		File:        file,
		FileName:    fileHeader.Filename,
		FileSize:    fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "upload accepted, processing ...",
		"asset":   ToAssetDTO(output.Asset),
	})
}
