package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
)

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(CollJobs)}
}

func (r *JobRepository) Create(j *entity.Job) error {
	ctx := context.Background()
	now := time.Now().UTC()
	if j.ID.IsZero() {
		j.ID = bson.NewObjectID()
	}
	if j.Status == "" {
		j.Status = entity.JobStatusOpen
	}
	if j.Applicants == nil {
		j.Applicants = []entity.Applicant{}
	}
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, j)
	return err
}

func (r *JobRepository) GetByID(id string) (*entity.Job, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	j := &entity.Job{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (r *JobRepository) FindOpen() ([]entity.Job, error) {
	return r.find(bson.M{"status": bson.M{"$ne": entity.JobStatusClosed}})
}

func (r *JobRepository) FindByApplicant(userID string) ([]entity.Job, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []entity.Job{}, nil
	}
	return r.find(bson.M{"applicants.user": oid})
}

func (r *JobRepository) FindByEmployer(userID string) ([]entity.Job, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []entity.Job{}, nil
	}
	return r.find(bson.M{"employer": oid})
}

// PushApplicant appends an applicant entry to the job's embedded list and
// bumps updated_at.
func (r *JobRepository) PushApplicant(jobID string, a entity.Applicant) error {
	oid, err := bson.ObjectIDFromHex(jobID)
	if err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"applicants": a},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetApplicantStatus updates the embedded entry for the given applicant using
// the positional operator.
func (r *JobRepository) SetApplicantStatus(jobID, applicantID, status string) error {
	jid, err := bson.ObjectIDFromHex(jobID)
	if err != nil {
		return repository.ErrNotFound
	}
	aid, err := bson.ObjectIDFromHex(applicantID)
	if err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": jid, "applicants.user": aid},
		bson.M{
			"$set": bson.M{
				"applicants.$.status": status,
				"updated_at":          time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *JobRepository) find(filter bson.M) ([]entity.Job, error) {
	ctx := context.Background()
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	jobs := []entity.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
