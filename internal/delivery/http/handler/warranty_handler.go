package handler

import (
	"errors"
	"net/http"

	domainWarranty "incubator-admin/internal/domain/warranty"
	"incubator-admin/internal/usecase/warranty"
	"incubator-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WarrantyHandler struct {
	service *warranty.Service
}

func NewWarrantyHandler(service *warranty.Service) *WarrantyHandler {
	return &WarrantyHandler{service: service}
}

func (h *WarrantyHandler) RegisterRoutes(router *gin.RouterGroup) {
	warranties := router.Group("/warranties")
	{
		warranties.GET("", h.ListWarranties)
		warranties.GET("/statistics", h.GetStatistics)
		warranties.GET("/:id", h.GetWarranty)
		warranties.POST("/:id/issues", h.ReportIssue)
		warranties.PUT("/:id/issues/:issueId", h.UpdateIssue)
	}
}

func (h *WarrantyHandler) ListWarranties(c *gin.Context) {
	var filter warranty.WarrantyFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	warranties, err := h.service.ListWarranties(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Warranties retrieved successfully", warranties)
}

func (h *WarrantyHandler) GetWarranty(c *gin.Context) {
	w, err := h.service.GetWarranty(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Warranty retrieved successfully", w)
}

func (h *WarrantyHandler) ReportIssue(c *gin.Context) {
	var req warranty.ReportIssueRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.ReportIssue(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domainWarranty.ErrWarrantyNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, domainWarranty.ErrWarrantyExpired),
			errors.Is(err, domainWarranty.ErrServiceExhausted):
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Issue reported successfully", updated)
}

func (h *WarrantyHandler) UpdateIssue(c *gin.Context) {
	var req warranty.UpdateIssueRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateIssue(c.Request.Context(), c.Param("id"), c.Param("issueId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domainWarranty.ErrWarrantyNotFound),
			errors.Is(err, domainWarranty.ErrIssueNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", updated)
}

func (h *WarrantyHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Warranty statistics retrieved successfully", stats)
}
