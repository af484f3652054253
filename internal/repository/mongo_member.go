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

// MongoMemberRepository is the mongo implementation of MemberRepository.
type MongoMemberRepository struct {
	coll *mongo.Collection
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(db *mongo.Database) MemberRepository {
	return &MongoMemberRepository{coll: db.Collection(membersCollection)}
}

func (r *MongoMemberRepository) Create(ctx context.Context, member *models.Member) error {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return translateErr(err)
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoMemberRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	var member models.Member
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&member); err != nil {
		return nil, translateErr(err)
	}
	return &member, nil
}

func (r *MongoMemberRepository) FindByName(ctx context.Context, name string) (*models.Member, error) {
	var member models.Member
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&member); err != nil {
		return nil, translateErr(err)
	}
	return &member, nil
}

func (r *MongoMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateErr(err)
	}

	members := []models.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, translateErr(err)
	}
	return members, nil
}

func (r *MongoMemberRepository) Update(ctx context.Context, member *models.Member) error {
	member.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMemberRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	var member models.Member
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&member); err != nil {
		return nil, translateErr(err)
	}
	return &member, nil
}
