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

// MongoPositionRepository is the mongo implementation of PositionRepository.
type MongoPositionRepository struct {
	coll *mongo.Collection
}

// NewPositionRepository creates a new PositionRepository.
func NewPositionRepository(db *mongo.Database) PositionRepository {
	return &MongoPositionRepository{coll: db.Collection(positionsCollection)}
}

func (r *MongoPositionRepository) Create(ctx context.Context, position *models.Position) error {
	now := time.Now()
	position.CreatedAt = now
	position.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, position)
	if err != nil {
		return translateErr(err)
	}
	position.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoPositionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error) {
	var position models.Position
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&position); err != nil {
		return nil, translateErr(err)
	}
	return &position, nil
}

func (r *MongoPositionRepository) List(ctx context.Context, activeOnly bool) ([]models.Position, error) {
	filter := bson.M{}
	if activeOnly {
		filter["status"] = models.PositionActive
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translateErr(err)
	}

	positions := []models.Position{}
	if err := cursor.All(ctx, &positions); err != nil {
		return nil, translateErr(err)
	}
	return positions, nil
}

func (r *MongoPositionRepository) Update(ctx context.Context, position *models.Position) error {
	position.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": position.ID}, position)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPositionRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Position, error) {
	var position models.Position
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&position); err != nil {
		return nil, translateErr(err)
	}
	return &position, nil
}

func (r *MongoPositionRepository) IncrementApplications(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"currentApplications": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPositionRepository) CountByStatus(ctx context.Context, status models.PositionStatus) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	return count, translateErr(err)
}
