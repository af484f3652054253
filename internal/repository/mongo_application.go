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

// MongoApplicationRepository is the mongo implementation of ApplicationRepository.
// Uniqueness of (email, position) is enforced by a compound index created at
// startup, so a racing duplicate submission surfaces as ErrDuplicate here.
type MongoApplicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(applicationsCollection)}
}

func (r *MongoApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	if application.AppliedDate.IsZero() {
		application.AppliedDate = now
	}

	res, err := r.coll.InsertOne(ctx, application)
	if err != nil {
		return translateErr(err)
	}
	application.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&application); err != nil {
		return nil, translateErr(err)
	}
	return &application, nil
}

func (r *MongoApplicationRepository) FindByEmailAndPosition(ctx context.Context, email string, position primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	filter := bson.M{"email": email, "position": position}
	if err := r.coll.FindOne(ctx, filter).Decode(&application); err != nil {
		return nil, translateErr(err)
	}
	return &application, nil
}

func (r *MongoApplicationRepository) FindByName(ctx context.Context, firstName, lastName string) (*models.Application, error) {
	var application models.Application
	filter := bson.M{"firstName": firstName, "lastName": lastName}
	if err := r.coll.FindOne(ctx, filter).Decode(&application); err != nil {
		return nil, translateErr(err)
	}
	return &application, nil
}

func (r *MongoApplicationRepository) List(ctx context.Context) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appliedDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateErr(err)
	}

	applications := []models.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, translateErr(err)
	}
	return applications, nil
}

func (r *MongoApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	application.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": application.ID}, application)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&application); err != nil {
		return nil, translateErr(err)
	}
	return &application, nil
}

func (r *MongoApplicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	return count, translateErr(err)
}

func (r *MongoApplicationRepository) CountAppliedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	filter := bson.M{"appliedDate": bson.M{"$gte": from, "$lte": to}}
	count, err := r.coll.CountDocuments(ctx, filter)
	return count, translateErr(err)
}

func (r *MongoApplicationRepository) CountByStatusBetween(ctx context.Context, status models.ApplicationStatus, from, to time.Time) (int64, error) {
	filter := bson.M{
		"status":      status,
		"appliedDate": bson.M{"$gte": from, "$lte": to},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	return count, translateErr(err)
}
