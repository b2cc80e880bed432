package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactRef is one entry in a user's contact list.
type ContactRef struct {
	ContactID bson.ObjectID `bson:"contact_id" json:"contactId"`
	AddedOn   time.Time     `bson:"added_on" json:"addedOn"`
}

// Contact holds a user's contact list as a single document. A contact id
// appears at most once per owner.
type Contact struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   bson.ObjectID `bson:"user_id" json:"userId"`
	Contacts []ContactRef  `bson:"contacts" json:"contacts"`
}

// IndexOf returns the position of the given contact in the list, or -1.
func (c *Contact) IndexOf(contactID bson.ObjectID) int {
	for i, ref := range c.Contacts {
		if ref.ContactID == contactID {
			return i
		}
	}
	return -1
}
