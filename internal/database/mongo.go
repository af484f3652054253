package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireline/applicant-tracking-api/internal/config"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
)

const connectTimeout = 10 * time.Second

// Connect establishes the mongo client and returns the application database.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client.Database(cfg.Mongo.Database), nil
}

// EnsureIndexes creates the indexes the service relies on. The compound
// unique index on (email, position) is what turns a racing duplicate
// application into a constraint violation instead of a second record.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	applicationIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "appliedDate", Value: -1}}},
	}
	if _, err := db.Collection("applications").Indexes().CreateMany(ctx, applicationIndexes); err != nil {
		return fmt.Errorf("failed to create application indexes: %w", err)
	}

	notificationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "read", Value: 1}}},
	}
	if _, err := db.Collection("notifications").Indexes().CreateMany(ctx, notificationIndexes); err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}

	interviewIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}}},
	}
	if _, err := db.Collection("interviews").Indexes().CreateMany(ctx, interviewIndexes); err != nil {
		return fmt.Errorf("failed to create interview indexes: %w", err)
	}

	return nil
}

// BootstrapAdmin creates the administrative account if none exists yet.
func BootstrapAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config, log *logging.Logger) error {
	coll := db.Collection("users")

	count, err := coll.CountDocuments(ctx, bson.M{"role": "admin"})
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if count > 0 {
		log.Debug("admin account already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	admin := models.User{
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Info("admin account created", "email", cfg.Admin.Email)
	return nil
}
