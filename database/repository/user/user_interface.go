package userRepo

import (
	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access for the users collection.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error

	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)

	AddFriend(userID string, friend models.Friend) error
	RemoveFriend(userID, friendUserID string) error
	IncrementStat(id, field string, delta int) error
}
