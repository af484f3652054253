package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a staff record, independent of the privileged User account.
// The role is free text; "admin" is rejected at validation so staff roles
// never collide with the administrative login.
type Member struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone"`
	Role       string             `bson:"role" json:"role"`
	Bio        string             `bson:"bio,omitempty" json:"bio"`
	Status     string             `bson:"status" json:"status"`
	Department string             `bson:"department" json:"department"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}
