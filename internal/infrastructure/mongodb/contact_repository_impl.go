package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
)

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(CollContacts)}
}

func (r *ContactRepository) GetByOwner(ownerID string) (*entity.Contact, error) {
	oid, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	c := &entity.Contact{}
	if err := r.coll.FindOne(ctx, bson.M{"user_id": oid}).Decode(c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Save upserts the whole contact-list document keyed by owner. The list is a
// single aggregate; concurrent saves race last-write-wins at the store.
func (r *ContactRepository) Save(c *entity.Contact) error {
	ctx := context.Background()
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	if c.Contacts == nil {
		c.Contacts = []entity.ContactRef{}
	}
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": c.UserID},
		bson.M{"$set": bson.M{"contacts": c.Contacts}, "$setOnInsert": bson.M{"_id": c.ID}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
