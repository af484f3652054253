package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireline/applicant-tracking-api/internal/models"
)

// MongoMessageRepository is the mongo implementation of MessageRepository.
type MongoMessageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &MongoMessageRepository{coll: db.Collection(messagesCollection)}
}

func (r *MongoMessageRepository) Create(ctx context.Context, message *models.Message) error {
	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, message)
	if err != nil {
		return translateErr(err)
	}
	message.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoMessageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	var message models.Message
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&message); err != nil {
		return nil, translateErr(err)
	}
	return &message, nil
}

func (r *MongoMessageRepository) List(ctx context.Context) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateErr(err)
	}

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, translateErr(err)
	}
	return messages, nil
}

func (r *MongoMessageRepository) Update(ctx context.Context, message *models.Message) error {
	message.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": message.ID}, message)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMessageRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	var message models.Message
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&message); err != nil {
		return nil, translateErr(err)
	}
	return &message, nil
}
