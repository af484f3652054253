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

// MongoInterviewRepository is the mongo implementation of InterviewRepository.
type MongoInterviewRepository struct {
	coll *mongo.Collection
}

// NewInterviewRepository creates a new InterviewRepository.
func NewInterviewRepository(db *mongo.Database) InterviewRepository {
	return &MongoInterviewRepository{coll: db.Collection(interviewsCollection)}
}

func (r *MongoInterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	now := time.Now()
	interview.CreatedAt = now
	interview.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, interview)
	if err != nil {
		return translateErr(err)
	}
	interview.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoInterviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&interview); err != nil {
		return nil, translateErr(err)
	}
	return &interview, nil
}

func (r *MongoInterviewRepository) List(ctx context.Context) ([]models.Interview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateErr(err)
	}

	interviews := []models.Interview{}
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, translateErr(err)
	}
	return interviews, nil
}

func (r *MongoInterviewRepository) Update(ctx context.Context, interview *models.Interview) error {
	interview.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": interview.ID}, interview)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoInterviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&interview); err != nil {
		return nil, translateErr(err)
	}
	return &interview, nil
}

func (r *MongoInterviewRepository) CountByStatus(ctx context.Context, status models.InterviewStatus) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	return count, translateErr(err)
}

func (r *MongoInterviewRepository) CountByStatusBetween(ctx context.Context, status models.InterviewStatus, from, to time.Time) (int64, error) {
	filter := bson.M{
		"status": status,
		"date":   bson.M{"$gte": from, "$lte": to},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	return count, translateErr(err)
}
