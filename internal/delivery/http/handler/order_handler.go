package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	domainOrder "incubator-admin/internal/domain/order"
	domainProduct "incubator-admin/internal/domain/product"
	"incubator-admin/internal/usecase/order"
	"incubator-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *order.Service
	wizard  *order.Wizard
}

func NewOrderHandler(service *order.Service, wizard *order.Wizard) *OrderHandler {
	return &OrderHandler{service: service, wizard: wizard}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/export", h.ExportOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/qrcode", h.GetQRCode)
		orders.PUT("/:id/status", h.UpdateStatus)

		drafts := orders.Group("/drafts")
		{
			drafts.POST("", h.StartDraft)
			drafts.GET("/:id", h.GetDraft)
			drafts.PATCH("/:id", h.UpdateDraft)
			drafts.POST("/:id/next", h.NextStep)
			drafts.POST("/:id/back", h.PreviousStep)
			drafts.GET("/:id/summary", h.GetSummary)
			drafts.POST("/:id/submit", h.SubmitDraft)
			drafts.DELETE("/:id", h.CancelDraft)
		}
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var filter order.OrderFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req order.UpdateOrderStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, domainOrder.ErrOrderNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status updated successfully", updated)
}

// GetQRCode streams the order's incubator code as a PNG.
func (h *OrderHandler) GetQRCode(c *gin.Context) {
	png, err := h.service.QRCodePNG(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainOrder.ErrOrderNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// ExportOrders streams the filtered order list as an xlsx download.
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	var filter order.OrderFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	workbook, err := h.service.ExportExcel(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (h *OrderHandler) StartDraft(c *gin.Context) {
	draft := h.wizard.Start(c.Request.Context())
	utils.SuccessResponse(c, http.StatusCreated, "Order draft started", draft)
}

func (h *OrderHandler) GetDraft(c *gin.Context) {
	draft, err := h.wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft retrieved successfully", draft)
}

func (h *OrderHandler) UpdateDraft(c *gin.Context) {
	var req order.UpdateDraftRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.wizard.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domainOrder.ErrDraftNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, domainProduct.ErrProductNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft updated successfully", draft)
}

func (h *OrderHandler) NextStep(c *gin.Context) {
	draft, err := h.wizard.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainOrder.ErrDraftNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft advanced", draft)
}

func (h *OrderHandler) PreviousStep(c *gin.Context) {
	draft, err := h.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft moved back", draft)
}

func (h *OrderHandler) GetSummary(c *gin.Context) {
	summary, err := h.wizard.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainOrder.ErrDraftNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Summary computed successfully", summary)
}

func (h *OrderHandler) SubmitDraft(c *gin.Context) {
	created, err := h.wizard.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainOrder.ErrDraftNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", created)
}

func (h *OrderHandler) CancelDraft(c *gin.Context) {
	if err := h.wizard.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft cancelled", nil)
}
