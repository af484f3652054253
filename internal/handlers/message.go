package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// CreateMessage stores a contact-form submission.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messages.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    message,
	})
}

// ListMessages returns every contact message.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}

// UpdateMessageStatus moves a message through the inbox workflow.
func (h *MessageHandler) UpdateMessageStatus(c *gin.Context) {
	var req dto.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messages.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Message status updated successfully",
		"data":    message,
	})
}

// ReplyMessage emails the sender and marks the message replied.
func (h *MessageHandler) ReplyMessage(c *gin.Context) {
	var req dto.ReplyMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messages.Reply(c.Request.Context(), c.Param("id"), req.ReplyText)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Reply sent successfully",
		"data":    message,
	})
}

// DeleteMessage removes a contact message.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.messages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
