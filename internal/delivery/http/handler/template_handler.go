package handler

import (
	"errors"
	"net/http"

	domainTemplate "incubator-admin/internal/domain/template"
	"incubator-admin/internal/usecase/template"
	"incubator-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	service *template.Service
}

func NewTemplateHandler(service *template.Service) *TemplateHandler {
	return &TemplateHandler{service: service}
}

func (h *TemplateHandler) RegisterRoutes(router *gin.RouterGroup) {
	templates := router.Group("/templates")
	{
		templates.GET("", h.ListTemplates)
		templates.GET("/icons", h.ListIcons)
		templates.GET("/:id", h.GetTemplate)
		templates.POST("", h.CreateTemplate)
		templates.PUT("/:id", h.UpdateTemplate)
	}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var filter template.TemplateFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	templates, err := h.service.ListTemplates(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Templates retrieved successfully", templates)
}

// ListIcons returns the fixed glyph set the template form offers.
func (h *TemplateHandler) ListIcons(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Icons retrieved successfully", domainTemplate.Icons)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	t, err := h.service.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template retrieved successfully", t)
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req template.CreateTemplateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateTemplate(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Template created successfully", created)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var req template.UpdateTemplateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateTemplate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, domainTemplate.ErrTemplateNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template updated successfully", updated)
}
