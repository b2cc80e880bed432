package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
)

type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(CollNotifications)}
}

func (r *NotificationRepository) Insert(n *entity.Notification) error {
	ctx := context.Background()
	if n.ID.IsZero() {
		n.ID = bson.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) FindByUser(userID string) ([]entity.Notification, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []entity.Notification{}, nil
	}
	ctx := context.Background()
	cur, err := r.coll.Find(ctx, bson.M{"user": oid},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	out := []entity.Notification{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
