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

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(CollMessages)}
}

func (r *MessageRepository) Insert(m *entity.Message) error {
	ctx := context.Background()
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *MessageRepository) FindBetween(a, b string) ([]entity.Message, error) {
	aid, err := bson.ObjectIDFromHex(a)
	if err != nil {
		return []entity.Message{}, nil
	}
	bid, err := bson.ObjectIDFromHex(b)
	if err != nil {
		return []entity.Message{}, nil
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": aid, "receiver_id": bid},
		bson.M{"sender_id": bid, "receiver_id": aid},
	}}
	return r.find(filter, bson.D{{Key: "timestamp", Value: 1}})
}

func (r *MessageRepository) FindByJob(jobID string) ([]entity.Message, error) {
	oid, err := bson.ObjectIDFromHex(jobID)
	if err != nil {
		return []entity.Message{}, nil
	}
	return r.find(bson.M{"job_id": oid}, bson.D{{Key: "timestamp", Value: -1}})
}

func (r *MessageRepository) find(filter bson.M, sort bson.D) ([]entity.Message, error) {
	ctx := context.Background()
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	msgs := []entity.Message{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
