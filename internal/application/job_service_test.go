package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
)

func newJobFixture(t *testing.T) (*JobService, *fakeJobRepo, *fakeUserRepo, *recordingNotifier) {
	t.Helper()
	jobs := newFakeJobRepo()
	users := newFakeUserRepo()
	notifier := &recordingNotifier{}
	svc := NewJobService(jobs, users, nil, 0, notifier, nil)
	return svc, jobs, users, notifier
}

func seedUser(t *testing.T, users *fakeUserRepo, name string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Age: 30, Username: name, Email: name + "@example.com"}
	require.NoError(t, users.Create(u))
	return u
}

func seedJob(t *testing.T, jobs *fakeJobRepo, employer bson.ObjectID, status string) *entity.Job {
	t.Helper()
	j := &entity.Job{
		Title:    "Mow lawn",
		Amount:   25,
		Location: "Backyard",
		Date:     time.Now().Add(24 * time.Hour),
		Employer: employer,
		Status:   status,
	}
	require.NoError(t, jobs.Create(j))
	return j
}

func TestJobApply(t *testing.T) {
	ctx := context.Background()

	t.Run("records one applied entry with a profile snapshot", func(t *testing.T) {
		svc, jobs, users, notifier := newJobFixture(t)
		employer := seedUser(t, users, "employer")
		worker := seedUser(t, users, "worker")
		job := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)

		err := svc.Apply(ctx, job.ID.Hex(), worker.ID.Hex(), "I have a mower")
		require.NoError(t, err)

		got, err := jobs.GetByID(job.ID.Hex())
		require.NoError(t, err)
		require.Len(t, got.Applicants, 1)
		entry := got.Applicants[0]
		assert.Equal(t, worker.ID, entry.User)
		assert.Equal(t, entity.ApplicantStatusApplied, entry.Status)
		assert.Equal(t, "I have a mower", entry.Comments)
		assert.Equal(t, worker.Name, entry.Name)
		assert.Equal(t, worker.Age, entry.Age)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, employer.ID.Hex(), notifier.events[0].UserID)
		assert.Equal(t, entity.NotificationJobUpdate, notifier.events[0].Type)
	})

	t.Run("second apply fails", func(t *testing.T) {
		svc, jobs, users, _ := newJobFixture(t)
		employer := seedUser(t, users, "employer")
		worker := seedUser(t, users, "worker")
		job := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)

		require.NoError(t, svc.Apply(ctx, job.ID.Hex(), worker.ID.Hex(), ""))
		err := svc.Apply(ctx, job.ID.Hex(), worker.ID.Hex(), "")
		assert.ErrorIs(t, err, ErrAlreadyApplied)

		got, err := jobs.GetByID(job.ID.Hex())
		require.NoError(t, err)
		assert.Len(t, got.Applicants, 1)
	})

	t.Run("closed job rejects applications", func(t *testing.T) {
		svc, jobs, users, _ := newJobFixture(t)
		employer := seedUser(t, users, "employer")
		worker := seedUser(t, users, "worker")
		job := seedJob(t, jobs, employer.ID, entity.JobStatusClosed)

		err := svc.Apply(ctx, job.ID.Hex(), worker.ID.Hex(), "")
		assert.ErrorIs(t, err, ErrJobClosed)
	})

	t.Run("employer cannot apply to their own job", func(t *testing.T) {
		svc, jobs, users, _ := newJobFixture(t)
		employer := seedUser(t, users, "employer")
		job := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)

		err := svc.Apply(ctx, job.ID.Hex(), employer.ID.Hex(), "")
		assert.ErrorIs(t, err, ErrSelfApplication)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc, _, users, _ := newJobFixture(t)
		worker := seedUser(t, users, "worker")

		err := svc.Apply(ctx, bson.NewObjectID().Hex(), worker.ID.Hex(), "")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("unknown applicant", func(t *testing.T) {
		svc, jobs, users, _ := newJobFixture(t)
		employer := seedUser(t, users, "employer")
		job := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)

		err := svc.Apply(ctx, job.ID.Hex(), bson.NewObjectID().Hex(), "")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestJobDecide(t *testing.T) {
	ctx := context.Background()

	applied := func(t *testing.T) (*JobService, *fakeJobRepo, *entity.User, *entity.User, *entity.Job, *recordingNotifier) {
		t.Helper()
		svc, jobs, users, notifier := newJobFixture(t)
		employer := seedUser(t, users, "employer")
		worker := seedUser(t, users, "worker")
		job := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)
		require.NoError(t, svc.Apply(ctx, job.ID.Hex(), worker.ID.Hex(), ""))
		notifier.events = nil
		return svc, jobs, employer, worker, job, notifier
	}

	t.Run("employer accepts an applicant", func(t *testing.T) {
		svc, jobs, employer, worker, job, notifier := applied(t)

		err := svc.Decide(ctx, job.ID.Hex(), worker.ID.Hex(), entity.ApplicantStatusAccepted, employer.ID.Hex())
		require.NoError(t, err)

		got, err := jobs.GetByID(job.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicantStatusAccepted, got.Applicants[0].Status)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, worker.ID.Hex(), notifier.events[0].UserID)
		assert.Equal(t, entity.NotificationApplicationStatus, notifier.events[0].Type)
	})

	t.Run("only the employer may decide", func(t *testing.T) {
		svc, jobs, _, worker, job, _ := applied(t)

		err := svc.Decide(ctx, job.ID.Hex(), worker.ID.Hex(), entity.ApplicantStatusAccepted, worker.ID.Hex())
		assert.ErrorIs(t, err, ErrNotEmployer)

		got, err := jobs.GetByID(job.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicantStatusApplied, got.Applicants[0].Status)
	})

	t.Run("absent applicant", func(t *testing.T) {
		svc, _, employer, _, job, _ := applied(t)

		err := svc.Decide(ctx, job.ID.Hex(), bson.NewObjectID().Hex(), entity.ApplicantStatusRejected, employer.ID.Hex())
		assert.ErrorIs(t, err, ErrApplicantNotFound)
	})

	t.Run("a decided entry may be overwritten", func(t *testing.T) {
		svc, jobs, employer, worker, job, _ := applied(t)

		require.NoError(t, svc.Decide(ctx, job.ID.Hex(), worker.ID.Hex(), entity.ApplicantStatusAccepted, employer.ID.Hex()))
		require.NoError(t, svc.Decide(ctx, job.ID.Hex(), worker.ID.Hex(), entity.ApplicantStatusRejected, employer.ID.Hex()))

		got, err := jobs.GetByID(job.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicantStatusRejected, got.Applicants[0].Status)
	})

	t.Run("rejects unknown outcomes", func(t *testing.T) {
		svc, _, employer, worker, job, _ := applied(t)

		err := svc.Decide(ctx, job.ID.Hex(), worker.ID.Hex(), "maybe", employer.ID.Hex())
		assert.ErrorIs(t, err, ErrInvalidOutcome)
	})
}

func TestJobDashboard(t *testing.T) {
	ctx := context.Background()
	svc, jobs, users, _ := newJobFixture(t)
	employer := seedUser(t, users, "employer")
	worker := seedUser(t, users, "worker")

	posted := seedJob(t, jobs, worker.ID, entity.JobStatusOpen)
	other := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)
	require.NoError(t, svc.Apply(ctx, other.ID.Hex(), worker.ID.Hex(), ""))

	appliedJobs, postedJobs, err := svc.Dashboard(ctx, worker.ID.Hex())
	require.NoError(t, err)
	require.Len(t, appliedJobs, 1)
	assert.Equal(t, other.ID, appliedJobs[0].ID)
	require.Len(t, postedJobs, 1)
	assert.Equal(t, posted.ID, postedJobs[0].ID)
}

func TestJobAvailableSkipsClosed(t *testing.T) {
	ctx := context.Background()
	svc, jobs, users, _ := newJobFixture(t)
	employer := seedUser(t, users, "employer")

	open := seedJob(t, jobs, employer.ID, entity.JobStatusOpen)
	seedJob(t, jobs, employer.ID, entity.JobStatusClosed)

	got, err := svc.Available(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, open.ID, got[0].ID)
}
