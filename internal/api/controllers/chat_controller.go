package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/internal/services"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat godoc
// @Summary Ask about an itinerary
// @Description Sends the question with the itinerary as context to the assistant and returns its consolidated reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Question and itinerary"
// @Success 200 {object} utils.ChatResponse
// @Failure 400 {object} utils.ChatErrorResponse
// @Failure 500 {object} utils.ChatErrorResponse
// @Router /api/chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.respondError(c, utils.ErrMissingChatFields)
		return
	}

	reply, err := cc.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		cc.respondError(c, err)
		return
	}

	var conversationID *string
	if reply.ConversationID != "" {
		conversationID = &reply.ConversationID
	}
	utils.RespondSuccess(c, utils.ChatResponse{
		Success:        true,
		Reply:          reply.Text,
		ConversationID: conversationID,
	})
}

func (cc *ChatController) respondError(c *gin.Context, err error) {
	code, message := utils.ErrorStatus(err)
	utils.LogError(c, code, err)
	if code >= http.StatusInternalServerError {
		message = "Request failed: " + message
	}
	c.JSON(code, utils.ChatErrorResponse{
		Success: false,
		Reply:   message,
		TraceID: utils.TraceID(c),
	})
}
