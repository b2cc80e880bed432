package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iamonjarvis/anywork-backend/internal/application"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
	"github.com/iamonjarvis/anywork-backend/pkg/response"
)

type UserHandler struct {
	Svc           *application.AuthService
	Notifications repository.NotificationRepository
	Logger        *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, notifications repository.NotificationRepository, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Notifications: notifications, Logger: logger}
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).Error("user lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "user")
}

// ListNotifications GET /api/notifications returns the caller's
// notifications, newest first.
func (h *UserHandler) ListNotifications(c *gin.Context) {
	uid := c.GetString("userID")
	items, err := h.Notifications.FindByUser(uid)
	if err != nil {
		h.Logger.WithError(err).Error("notification listing failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": items}, "notifications")
}
