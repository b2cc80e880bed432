package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobClosed         = errors.New("cannot apply to a closed job")
	ErrSelfApplication   = errors.New("employer cannot apply for their own job")
	ErrAlreadyApplied    = errors.New("already applied")
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrNotEmployer       = errors.New("unauthorized action")
	ErrInvalidOutcome    = errors.New("invalid outcome")
)

const availableJobsKey = "jobs:available"

// JobService owns the application workflow: the state machine moving a
// (job, user) pair through NotApplied -> Applied -> {Accepted, Rejected}.
type JobService struct {
	Jobs     repository.JobRepository
	Users    repository.UserRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewJobService(jobs repository.JobRepository, users repository.UserRepository, rdb *redis.Client, cacheTTL time.Duration, notifier Notifier, logger *logrus.Logger) *JobService {
	return &JobService{Jobs: jobs, Users: users, Redis: rdb, CacheTTL: cacheTTL, Notifier: notifier, Logger: logger}
}

type CreateJobInput struct {
	Title       string
	Description string
	Amount      float64
	Location    string
	Lat         float64
	Lng         float64
	Date        time.Time
	Time        string
}

// Create posts a new open job owned by the employer.
func (s *JobService) Create(ctx context.Context, employerID string, in CreateJobInput) (*entity.Job, error) {
	eid, err := bson.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	j := &entity.Job{
		Title:       in.Title,
		Description: in.Description,
		Amount:      in.Amount,
		Location:    in.Location,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Date:        in.Date,
		Time:        in.Time,
		Employer:    eid,
		Status:      entity.JobStatusOpen,
	}
	if err := s.Jobs.Create(j); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, availableJobsKey)
	}
	return j, nil
}

// Available lists every job that is not closed, served from a short-lived
// Redis cache when possible.
func (s *JobService) Available(ctx context.Context) ([]entity.Job, error) {
	if s.Redis != nil {
		var cached []entity.Job
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, availableJobsKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	jobs, err := s.Jobs.FindOpen()
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, availableJobsKey, jobs, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("caching available jobs failed")
		}
	}
	return jobs, nil
}

// Dashboard returns the jobs the user applied to and the jobs they posted,
// independently fetched and unmerged.
func (s *JobService) Dashboard(ctx context.Context, userID string) (applied, posted []entity.Job, err error) {
	applied, err = s.Jobs.FindByApplicant(userID)
	if err != nil {
		return nil, nil, err
	}
	posted, err = s.Jobs.FindByEmployer(userID)
	if err != nil {
		return nil, nil, err
	}
	return applied, posted, nil
}

// Get loads a single job.
func (s *JobService) Get(ctx context.Context, jobID string) (*entity.Job, error) {
	j, err := s.Jobs.GetByID(jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return j, nil
}

// Apply moves (job, user) from NotApplied to Applied. Preconditions, checked
// in order: job exists, job is open, applicant is not the employer, no
// existing entry, applicant profile resolvable for the name/age snapshot.
func (s *JobService) Apply(ctx context.Context, jobID, applicantID, comments string) error {
	job, err := s.Jobs.GetByID(jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if job.Status == entity.JobStatusClosed {
		return ErrJobClosed
	}
	aid, err := bson.ObjectIDFromHex(applicantID)
	if err != nil {
		return ErrUserNotFound
	}
	if job.Employer == aid {
		return ErrSelfApplication
	}
	if job.ApplicantFor(aid) != nil {
		return ErrAlreadyApplied
	}
	user, err := s.Users.GetByID(applicantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	entry := entity.Applicant{
		User:     aid,
		Status:   entity.ApplicantStatusApplied,
		Comments: comments,
		Name:     user.Name,
		Age:      user.Age,
	}
	if err := s.Jobs.PushApplicant(jobID, entry); err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.Notify(ctx, NotificationEvent{
			UserID:  job.Employer.Hex(),
			Message: user.Name + " applied to " + job.Title,
			Type:    entity.NotificationJobUpdate,
		})
	}
	return nil
}

// Decide transitions an applicant entry to accepted or rejected. Only the
// job's employer may decide. An already-decided entry is overwritten without
// complaint; the store is the sole arbiter of the race.
func (s *JobService) Decide(ctx context.Context, jobID, applicantID, outcome, requesterID string) error {
	if outcome != entity.ApplicantStatusAccepted && outcome != entity.ApplicantStatusRejected {
		return ErrInvalidOutcome
	}
	job, err := s.Jobs.GetByID(jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	rid, err := bson.ObjectIDFromHex(requesterID)
	if err != nil || job.Employer != rid {
		return ErrNotEmployer
	}
	aid, err := bson.ObjectIDFromHex(applicantID)
	if err != nil {
		return ErrApplicantNotFound
	}
	if job.ApplicantFor(aid) == nil {
		return ErrApplicantNotFound
	}
	if err := s.Jobs.SetApplicantStatus(jobID, applicantID, outcome); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrApplicantNotFound
		}
		return err
	}

	if s.Notifier != nil {
		s.Notifier.Notify(ctx, NotificationEvent{
			UserID:  applicantID,
			Message: "Your application for " + job.Title + " was " + outcome,
			Type:    entity.NotificationApplicationStatus,
		})
	}
	return nil
}
