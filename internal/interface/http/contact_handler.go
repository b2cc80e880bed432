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

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type addContactRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
}

type toggleContactRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Action     string `json:"action" binding:"required,oneof=add remove"`
}

// Add POST /api/contacts/add
func (h *ContactHandler) Add(c *gin.Context) {
	var req addContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Receiver ID is required", validation.ToDetails(err))
		return
	}
	uid := c.GetString("userID")
	list, added, err := h.Svc.Add(c.Request.Context(), uid, req.ReceiverID)
	if err != nil {
		if errors.Is(err, application.ErrInvalidContactAction) {
			response.Error[any](c, http.StatusBadRequest, "Invalid receiver ID", nil)
			return
		}
		h.Logger.WithError(err).Error("contact add failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	if !added {
		response.Success[any](c, http.StatusOK, nil, "Contact already exists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact": list}, "Contact added successfully")
}

// List GET /api/contacts
func (h *ContactHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	contacts, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrNoContacts) {
			response.Error[any](c, http.StatusNotFound, "No contacts found", nil)
			return
		}
		h.Logger.WithError(err).Error("contact listing failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contacts": contacts}, "contacts")
}

// Toggle POST /api/contacts/toggle
func (h *ContactHandler) Toggle(c *gin.Context) {
	var req toggleContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Receiver ID and action are required", validation.ToDetails(err))
		return
	}
	uid := c.GetString("userID")
	list, err := h.Svc.Toggle(c.Request.Context(), uid, req.ReceiverID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrContactListNotFound):
			response.Error[any](c, http.StatusNotFound, "Contact list not found", nil)
		case errors.Is(err, application.ErrInvalidContactAction):
			response.Error[any](c, http.StatusBadRequest, "Invalid action or contact not found", nil)
		default:
			h.Logger.WithError(err).Error("contact toggle failed")
			response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact": list}, "Contact "+req.Action+"ed successfully")
}
