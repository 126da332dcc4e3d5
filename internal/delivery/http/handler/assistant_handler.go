package handler

import (
	"net/http"

	"incubator-admin/internal/assistant"
	"incubator-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	responder *assistant.Responder
}

func NewAssistantHandler(responder *assistant.Responder) *AssistantHandler {
	return &AssistantHandler{responder: responder}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/assistant")
	{
		chat.GET("/greeting", h.GetGreeting)
		chat.GET("/quick-questions", h.GetQuickQuestions)
		chat.POST("/messages", h.SendMessage)
		chat.GET("/session", h.OpenSession)
	}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *AssistantHandler) GetGreeting(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Greeting retrieved successfully", h.responder.Greeting())
}

func (h *AssistantHandler) GetQuickQuestions(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Quick questions retrieved successfully", h.responder.QuickQuestions())
}

// SendMessage answers one question over plain HTTP. The simulated typing
// delay applies here too, so slow clients should prefer the websocket.
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.responder.Reply(c.Request.Context(), req.Content)
	if err != nil {
		utils.ErrorResponse(c, http.StatusRequestTimeout, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply generated successfully", reply)
}

// OpenSession upgrades the request to a websocket chat session.
func (h *AssistantHandler) OpenSession(c *gin.Context) {
	assistant.ServeSession(h.responder, c.Writer, c.Request)
}
