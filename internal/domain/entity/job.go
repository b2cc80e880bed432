package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Job lifecycle statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Applicant entry statuses.
const (
	ApplicantStatusApplied  = "applied"
	ApplicantStatusAccepted = "accepted"
	ApplicantStatusRejected = "rejected"
)

// Applicant is a user's application to a job, embedded in the Job document.
// Name and Age are snapshots of the applicant's profile at apply time.
type Applicant struct {
	User     bson.ObjectID `bson:"user" json:"user"`
	Status   string        `bson:"status" json:"status"`
	Comments string        `bson:"comments" json:"comments"`
	Name     string        `bson:"name" json:"name"`
	Age      int           `bson:"age" json:"age"`
}

// Job is a posted task with a single employer and an embedded ordered list of
// applicants. The employer reference is immutable after creation; applicants
// are mutated only through the application workflow.
type Job struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Amount      float64       `bson:"amount" json:"amount"`
	Location    string        `bson:"location" json:"location"`
	Lat         float64       `bson:"lat" json:"lat"`
	Lng         float64       `bson:"lng" json:"lng"`
	Date        time.Time     `bson:"date" json:"date"`
	Time        string        `bson:"time" json:"time"`
	Employer    bson.ObjectID `bson:"employer" json:"employer"`
	Applicants  []Applicant   `bson:"applicants" json:"applicants"`
	Status      string        `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// ApplicantFor returns the applicant entry for the given user, if any.
func (j *Job) ApplicantFor(userID bson.ObjectID) *Applicant {
	for i := range j.Applicants {
		if j.Applicants[i].User == userID {
			return &j.Applicants[i]
		}
	}
	return nil
}

// IsParticipant reports whether the user is the employer or an applicant.
// This is the authorization predicate for the job's chat room.
func (j *Job) IsParticipant(userID bson.ObjectID) bool {
	if j.Employer == userID {
		return true
	}
	return j.ApplicantFor(userID) != nil
}
