package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iamonjarvis/anywork-backend/internal/application"
	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/pkg/response"
	"github.com/iamonjarvis/anywork-backend/pkg/validation"
)

type JobHandler struct {
	Svc    *application.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *application.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

type createJobRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Location    string    `json:"location" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time" binding:"required"`
	Lat         float64   `json:"lat" binding:"required,latitude"`
	Lng         float64   `json:"lng" binding:"required,longitude"`
}

type applyRequest struct {
	Comments string `json:"comments"`
}

// Available GET /api/jobs/available
func (h *JobHandler) Available(c *gin.Context) {
	jobs, err := h.Svc.Available(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("listing available jobs failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusOK, jobs, "available jobs")
}

// Dashboard GET /api/jobs/dashboard
func (h *JobHandler) Dashboard(c *gin.Context) {
	uid := c.GetString("userID")
	applied, posted, err := h.Svc.Dashboard(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("dashboard failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"appliedJobs": applied,
		"postedJobs":  posted,
	}, "dashboard")
}

// Create POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "All fields are required", validation.ToDetails(err))
		return
	}
	uid := c.GetString("userID")
	job, err := h.Svc.Create(c.Request.Context(), uid, application.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Location:    req.Location,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		h.Logger.WithError(err).Error("job creation failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, job, "job created")
}

// Apply POST /api/jobs/:id/apply
func (h *JobHandler) Apply(c *gin.Context) {
	var req applyRequest
	// Comments are optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	uid := c.GetString("userID")
	err := h.Svc.Apply(c.Request.Context(), c.Param("id"), uid, req.Comments)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrJobNotFound):
			response.Error[any](c, http.StatusNotFound, "Job not found", nil)
		case errors.Is(err, application.ErrJobClosed):
			response.Error[any](c, http.StatusBadRequest, "Cannot apply to a closed job", nil)
		case errors.Is(err, application.ErrSelfApplication):
			response.Error[any](c, http.StatusBadRequest, "Employer cannot apply for their own job", nil)
		case errors.Is(err, application.ErrAlreadyApplied):
			response.Error[any](c, http.StatusBadRequest, "Already applied", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "User not found", nil)
		default:
			h.Logger.WithError(err).Error("apply failed")
			response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Application submitted successfully")
}

// Accept POST /api/jobs/:id/applications/:applicantId/accept
func (h *JobHandler) Accept(c *gin.Context) {
	h.decide(c, entity.ApplicantStatusAccepted, "Applicant accepted successfully")
}

// Reject POST /api/jobs/:id/applications/:applicantId/reject
func (h *JobHandler) Reject(c *gin.Context) {
	h.decide(c, entity.ApplicantStatusRejected, "Applicant rejected successfully")
}

func (h *JobHandler) decide(c *gin.Context, outcome, okMessage string) {
	uid := c.GetString("userID")
	err := h.Svc.Decide(c.Request.Context(), c.Param("id"), c.Param("applicantId"), outcome, uid)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrJobNotFound):
			response.Error[any](c, http.StatusNotFound, "Job not found", nil)
		case errors.Is(err, application.ErrNotEmployer):
			response.Error[any](c, http.StatusForbidden, "Unauthorized action", nil)
		case errors.Is(err, application.ErrApplicantNotFound):
			response.Error[any](c, http.StatusNotFound, "Applicant not found", nil)
		default:
			h.Logger.WithError(err).Error("decide failed")
			response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, okMessage)
}
