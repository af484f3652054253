package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationApplication NotificationType = "application"
	NotificationInterview   NotificationType = "interview"
	NotificationTeam        NotificationType = "team"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification is an append-only record derived from mutations of other
// entities. The relative-time label is computed once at creation and stored
// as a static string; only the read flag is ever updated afterwards.
type Notification struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Type      NotificationType     `bson:"type" json:"type"`
	Title     string               `bson:"title" json:"title"`
	Message   string               `bson:"message" json:"message"`
	Time      string               `bson:"time" json:"time"`
	Date      time.Time            `bson:"date" json:"date"`
	Read      bool                 `bson:"read" json:"read"`
	Avatar    string               `bson:"avatar,omitempty" json:"avatar"`
	ActionURL string               `bson:"actionUrl,omitempty" json:"actionUrl"`
	Priority  NotificationPriority `bson:"priority" json:"priority"`
	CreatedAt time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updated_at"`
}
