package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/iamonjarvis/anywork-backend/internal/interface/http"
)

// ChatModule wires the realtime gateway endpoint. Authentication happens in
// the handshake, not through the bearer middleware, so the route stays
// outside the protected groups.
// Public: GET /api/ws (token required in handshake)

type ChatModule struct {
	Handler *handlers.WSHandler
}

func NewChatModule(h *handlers.WSHandler) *ChatModule {
	return &ChatModule{Handler: h}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ws", m.Handler.Handle)
}
