package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	activityUC "github.com/quangdng/folio-hub/internal/application/usecase/activity"
	dashboardUC "github.com/quangdng/folio-hub/internal/application/usecase/dashboard"
)

type DashboardHandler struct {
	computeStatsUseCase  *dashboardUC.ComputeStatsUseCase
	computeRecentUseCase *activityUC.ComputeRecentUseCase
}

func NewDashboardHandler(stats *dashboardUC.ComputeStatsUseCase, recent *activityUC.ComputeRecentUseCase) *DashboardHandler {
	return &DashboardHandler{
		computeStatsUseCase:  stats,
		computeRecentUseCase: recent,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	output, err := h.computeStatsUseCase.Execute(c.Request.Context(), dashboardUC.ComputeStatsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToDashboardDTO(output))
}

func (h *DashboardHandler) GetRecentActivities(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	output, err := h.computeRecentUseCase.Execute(c.Request.Context(), activityUC.ComputeRecentInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": ToActivityDTOs(output.Activities)})
}
