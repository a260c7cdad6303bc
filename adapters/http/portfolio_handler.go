package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/quangdng/folio-hub/internal/application/usecase/portfolio"
)

type PortfolioHandler struct {
	publicViewUseCase *portfolioUC.PublicViewUseCase
}

func NewPortfolioHandler(uc *portfolioUC.PublicViewUseCase) *PortfolioHandler {
	return &PortfolioHandler{publicViewUseCase: uc}
}

// GetPublicPortfolio serves the unauthenticated read-only view.
func (h *PortfolioHandler) GetPublicPortfolio(c *gin.Context) {
	username := c.Param("username")

	output, err := h.publicViewUseCase.Execute(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPublicPortfolioDTO(output))
}
