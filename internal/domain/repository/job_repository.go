package repository

import "github.com/iamonjarvis/anywork-backend/internal/domain/entity"

// JobRepository defines the interface for job persistence. Applicants live
// embedded in the job document; the push/status operations target them
// without rewriting the whole aggregate.
type JobRepository interface {
	Create(j *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	FindOpen() ([]entity.Job, error)
	FindByApplicant(userID string) ([]entity.Job, error)
	FindByEmployer(userID string) ([]entity.Job, error)
	PushApplicant(jobID string, a entity.Applicant) error
	SetApplicantStatus(jobID, applicantID, status string) error
}
