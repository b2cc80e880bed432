package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/iamonjarvis/anywork-backend/internal/realtime"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
	"github.com/iamonjarvis/anywork-backend/pkg/response"
)

// WSHandler upgrades authenticated connections into the realtime hub.
// The token travels in the handshake: a `token` query parameter or the
// Authorization header. Authentication failure terminates the attempt before
// any room operation is possible.
type WSHandler struct {
	Hub      *realtime.Hub
	Gateway  *realtime.Gateway
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *realtime.Hub, gw *realtime.Gateway, jwt *helpers.JWTManager, logger *logrus.Logger) *WSHandler {
	return &WSHandler{
		Hub:     hub,
		Gateway: gw,
		JWT:     jwt,
		Logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *WSHandler) handshakeToken(c *gin.Context) string {
	if tok := c.Query("token"); tok != "" {
		return tok
	}
	if header := c.GetHeader("Authorization"); header != "" {
		if _, tok, ok := strings.Cut(header, " "); ok {
			return tok
		}
	}
	return ""
}

// Handle GET /api/ws
func (h *WSHandler) Handle(c *gin.Context) {
	token := h.handshakeToken(c)
	if token == "" {
		response.Error[any](c, http.StatusUnauthorized, "Authentication error: Token missing", nil)
		return
	}
	claims, err := h.JWT.Parse(token)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "Authentication error: Invalid or expired token", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	client := realtime.NewClient(h.Hub, conn, claims.UserID)
	h.Hub.Register(client)
	go client.WritePump()
	go client.ReadPump(h.Gateway)
}
