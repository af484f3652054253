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

// MongoNotificationRepository is the mongo implementation of NotificationRepository.
type MongoNotificationRepository struct {
	coll *mongo.Collection
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &MongoNotificationRepository{coll: db.Collection(notificationsCollection)}
}

func (r *MongoNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	now := time.Now()
	notification.CreatedAt = now
	notification.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, notification)
	if err != nil {
		return translateErr(err)
	}
	notification.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoNotificationRepository) List(ctx context.Context, filter NotificationFilter) ([]models.Notification, int64, error) {
	query := bson.M{}
	if filter.Read != nil {
		query["read"] = *filter.Read
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, translateErr(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts = opts.SetSkip(int64((page - 1) * filter.Limit)).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, translateErr(err)
	}

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, translateErr(err)
	}
	return notifications, total, nil
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notification models.Notification
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&notification); err != nil {
		return nil, translateErr(err)
	}
	return &notification, nil
}

func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateMany(ctx, bson.M{"read": false}, update)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.ModifiedCount, nil
}

func (r *MongoNotificationRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&notification); err != nil {
		return nil, translateErr(err)
	}
	return &notification, nil
}

func (r *MongoNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"read": false})
	return count, translateErr(err)
}
