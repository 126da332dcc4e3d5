package handler

import (
	"errors"
	"net/http"

	domainTicket "incubator-admin/internal/domain/ticket"
	"incubator-admin/internal/usecase/ticket"
	"incubator-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service *ticket.Service
}

func NewTicketHandler(service *ticket.Service) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(router *gin.RouterGroup) {
	tickets := router.Group("/tickets")
	{
		tickets.GET("", h.ListTickets)
		tickets.GET("/statistics", h.GetStatistics)
		tickets.GET("/:id", h.GetTicket)
		tickets.POST("", h.CreateTicket)
		tickets.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	var filter ticket.TicketFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	tickets, err := h.service.ListTickets(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tickets retrieved successfully", tickets)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	t, err := h.service.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket retrieved successfully", t)
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req ticket.CreateTicketRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateTicket(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Ticket created successfully", created)
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var req ticket.UpdateTicketStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domainTicket.ErrTicketNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, domainTicket.ErrInvalidTransition):
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", updated)
}

func (h *TicketHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket statistics retrieved successfully", stats)
}
