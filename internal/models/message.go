package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

type MessagePriority string

const (
	MessagePriorityLow    MessagePriority = "low"
	MessagePriorityMedium MessagePriority = "medium"
	MessagePriorityHigh   MessagePriority = "high"
)

// MessageSubjects is the fixed vocabulary accepted by the contact form.
var MessageSubjects = []string{"internship", "partnership", "services", "careers", "general"}

// Message is an inbound contact-form submission. Priority is computed once
// at creation from the subject and body length.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    MessageStatus      `bson:"status" json:"status"`
	Priority  MessagePriority    `bson:"priority" json:"priority"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
