package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Notification types.
const (
	NotificationJobUpdate         = "job_update"
	NotificationNewMessage        = "new_message"
	NotificationApplicationStatus = "application_status"
)

// Notification is a per-user event record written by the notify worker.
type Notification struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	User      bson.ObjectID `bson:"user" json:"user"`
	Message   string        `bson:"message" json:"message"`
	Type      string        `bson:"type" json:"type"`
	Read      bool          `bson:"read" json:"read"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
