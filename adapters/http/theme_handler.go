package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	themeUC "github.com/quangdng/folio-hub/internal/application/usecase/theme"
)

type ThemeHandler struct {
	themeUseCase *themeUC.ThemeUseCase
}

func NewThemeHandler(uc *themeUC.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{themeUseCase: uc}
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	t, err := h.themeUseCase.Get(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToThemeDTO(t))
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.themeUseCase.Update(c.Request.Context(), themeUC.UpdateThemeInput{
		OwnerID:         ownerID,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		AccentColor:     req.AccentColor,
		FontFamily:      req.FontFamily,
		Layout:          req.Layout,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToThemeDTO(t))
}
