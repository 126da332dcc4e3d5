package handler

import (
	"errors"
	"net/http"

	"incubator-admin/internal/metrics"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	provider metrics.Provider
}

func NewDashboardHandler(provider metrics.Provider) *DashboardHandler {
	return &DashboardHandler{provider: provider}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/kpis", h.GetKPIs)
		dashboard.GET("/distribution", h.GetMachineDistribution)
		dashboard.GET("/series/:name", h.GetSeries)
	}
}

func (h *DashboardHandler) GetKPIs(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "KPIs retrieved successfully", h.provider.GetKPIs())
}

func (h *DashboardHandler) GetMachineDistribution(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Machine distribution retrieved successfully", h.provider.GetMachineDistribution())
}

// GetSeries serves one chart series, e.g. /dashboard/series/revenue?period=6M.
func (h *DashboardHandler) GetSeries(c *gin.Context) {
	period := c.DefaultQuery("period", "6M")

	points, err := h.provider.GetSeries(metrics.Series(c.Param("name")), period)
	if err != nil {
		if errors.Is(err, appErrors.ErrUnknownSeries) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Series retrieved successfully", points)
}
