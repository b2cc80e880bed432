package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamonjarvis/anywork-backend/internal/container"
	handlers "github.com/iamonjarvis/anywork-backend/internal/interface/http"
	"github.com/iamonjarvis/anywork-backend/internal/interface/middleware"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

// MessageModule wires the HTTP chat surface.
// Protected: POST /api/messages/send, GET /api/messages/:senderId/:receiverId,
// GET /api/messages/job/:jobId

type MessageModule struct {
	Handler *handlers.MessageHandler
	JWT     *helpers.JWTManager
}

func NewMessageModule(h *handlers.MessageHandler, jwt *helpers.JWTManager) *MessageModule {
	return &MessageModule{Handler: h, JWT: jwt}
}

func (m *MessageModule) Register(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.Use(middleware.Auth(m.JWT))
	messages.Use(middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID(), nil))
	{
		messages.POST("/send", m.Handler.Send)
		messages.GET("/job/:jobId", m.Handler.ByJob)
		messages.GET("/:senderId/:receiverId", m.Handler.Between)
	}
}
