package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamonjarvis/anywork-backend/internal/container"
	handlers "github.com/iamonjarvis/anywork-backend/internal/interface/http"
	"github.com/iamonjarvis/anywork-backend/internal/interface/middleware"
)

// AuthModule wires registration and login.
// Public: POST /api/auth/register, POST /api/auth/login

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil) // 10 req/min per IP per route

	auth := rg.Group("/auth")
	auth.POST("/register", limiter, m.Handler.Register)
	auth.POST("/login", limiter, m.Handler.Login)
}
