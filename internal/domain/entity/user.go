package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password; the field is never
// serialized in API responses.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Age       int           `bson:"age" json:"age"`
	Username  string        `bson:"username" json:"username"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password_hash" json:"-"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
