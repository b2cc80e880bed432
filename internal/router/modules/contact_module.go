package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamonjarvis/anywork-backend/internal/container"
	handlers "github.com/iamonjarvis/anywork-backend/internal/interface/http"
	"github.com/iamonjarvis/anywork-backend/internal/interface/middleware"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

// ContactModule wires the per-user contact list.
// Protected: POST /api/contacts/add, GET /api/contacts, POST /api/contacts/toggle

type ContactModule struct {
	Handler *handlers.ContactHandler
	JWT     *helpers.JWTManager
}

func NewContactModule(h *handlers.ContactHandler, jwt *helpers.JWTManager) *ContactModule {
	return &ContactModule{Handler: h, JWT: jwt}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.Use(middleware.Auth(m.JWT))
	contacts.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		contacts.POST("/add", m.Handler.Add)
		contacts.GET("", m.Handler.List)
		contacts.POST("/toggle", m.Handler.Toggle)
	}
}
