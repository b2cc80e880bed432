package router

import "github.com/gin-gonic/gin"

// Module is one feature area's route bundle. Implementations attach their
// handlers to the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
