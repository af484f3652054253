package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the administrative account. Exactly one admin is expected to
// exist; bootstrap logic creates it at startup if absent.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name,omitempty" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Bio          string             `bson:"bio,omitempty" json:"bio"`
	Image        string             `bson:"image,omitempty" json:"image"`
	TwoFASecret  string             `bson:"twoFASecret,omitempty" json:"-"`
	Is2FAEnabled bool               `bson:"is2FAEnabled" json:"is2FAEnabled"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}
