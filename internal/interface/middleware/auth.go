package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
	"github.com/iamonjarvis/anywork-backend/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the bearer token from the Authorization header and injects
// the user id into the Gin context. Expired and malformed tokens produce
// distinct 401 messages.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error[any](c, http.StatusUnauthorized, "Authorization header is missing", nil)
			c.Abort()
			return
		}
		_, token, found := strings.Cut(header, " ")
		if !found || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "Token is missing", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "Token expired. Please log in again."
			}
			response.Error[any](c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
