package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Message is a chat message between two users, optionally scoped to a job
// room. Messages are immutable once created.
type Message struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	JobID     *bson.ObjectID `bson:"job_id,omitempty" json:"jobId,omitempty"`
	SenderID  bson.ObjectID  `bson:"sender_id" json:"senderId"`
	ReceiverID bson.ObjectID `bson:"receiver_id" json:"receiverId"`
	Content   string         `bson:"content" json:"content"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
}
