package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iamonjarvis/anywork-backend/internal/application"
	"github.com/iamonjarvis/anywork-backend/pkg/response"
	"github.com/iamonjarvis/anywork-backend/pkg/validation"
)

type MessageHandler struct {
	Svc    *application.MessageService
	Logger *logrus.Logger
}

func NewMessageHandler(svc *application.MessageService, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{Svc: svc, Logger: logger}
}

type sendMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
	JobID      string `json:"jobId"`
	Content    string `json:"content" binding:"required"`
}

// Send POST /api/messages/send
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Sender, receiver and content are required", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.Send(c.Request.Context(), req.SenderID, req.ReceiverID, req.JobID, req.Content)
	if err != nil {
		if errors.Is(err, application.ErrInvalidMessage) {
			response.Error[any](c, http.StatusBadRequest, "Invalid message", nil)
			return
		}
		h.Logger.WithError(err).Error("message send failed")
		response.Error[any](c, http.StatusInternalServerError, "Error sending message", nil)
		return
	}
	response.Success(c, http.StatusOK, msg, "Message sent successfully")
}

// Between GET /api/messages/:senderId/:receiverId
func (h *MessageHandler) Between(c *gin.Context) {
	msgs, err := h.Svc.Between(c.Request.Context(), c.Param("senderId"), c.Param("receiverId"))
	if err != nil {
		h.Logger.WithError(err).Error("message fetch failed")
		response.Error[any](c, http.StatusInternalServerError, "Error fetching messages", nil)
		return
	}
	response.Success(c, http.StatusOK, msgs, "messages")
}

// ByJob GET /api/messages/job/:jobId
func (h *MessageHandler) ByJob(c *gin.Context) {
	msgs, err := h.Svc.ByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.Logger.WithError(err).Error("job message fetch failed")
		response.Error[any](c, http.StatusInternalServerError, "Error fetching job messages", nil)
		return
	}
	response.Success(c, http.StatusOK, msgs, "job messages")
}
