package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamonjarvis/anywork-backend/internal/container"
	handlers "github.com/iamonjarvis/anywork-backend/internal/interface/http"
	"github.com/iamonjarvis/anywork-backend/internal/interface/middleware"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

// JobModule wires job posting and the application workflow.
// Public: GET /api/jobs/available
// Protected: GET /api/jobs/dashboard, POST /api/jobs, POST /api/jobs/:id/apply,
// POST /api/jobs/:jobId/applications/:applicantId/accept|reject

type JobModule struct {
	Handler *handlers.JobHandler
	JWT     *helpers.JWTManager
}

func NewJobModule(h *handlers.JobHandler, jwt *helpers.JWTManager) *JobModule {
	return &JobModule{Handler: h, JWT: jwt}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.GET("/available", m.Handler.Available)

	auth := jobs.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/dashboard", m.Handler.Dashboard)
		auth.POST("", m.Handler.Create)
		auth.POST("/:id/apply", m.Handler.Apply)
		auth.POST("/:id/applications/:applicantId/accept", m.Handler.Accept)
		auth.POST("/:id/applications/:applicantId/reject", m.Handler.Reject)
	}
}
