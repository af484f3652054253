package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the mongo implementations.
const (
	positionsCollection     = "positions"
	applicationsCollection  = "applications"
	interviewsCollection    = "interviews"
	membersCollection       = "members"
	messagesCollection      = "messages"
	notificationsCollection = "notifications"
	usersCollection         = "users"
)

// translateErr maps driver errors onto the repository sentinels.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
