package friendRepo

import (
	"context"
	"fmt"
	"time"

	"roamly/database"
	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFriendRequestRepo implements FriendRequestRepository using MongoDB.
type MongoFriendRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoFriendRequestRepo creates a new instance of FriendRequestRepository using MongoDB.
func NewMongoFriendRequestRepo() FriendRequestRepository {
	coll := database.DB().Collection("friend_requests")
	repo := &MongoFriendRequestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFriendRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new friend-request document.
func (r *MongoFriendRequestRepo) Create(req *models.FriendRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}
	return nil
}

// GetByID retrieves a friend request by its unique ID.
func (r *MongoFriendRequestRepo) GetByID(id string) (*models.FriendRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.FriendRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch friend request with id %s: %w", id, err)
	}
	return &req, nil
}

// ListBySender retrieves outgoing requests for the user.
func (r *MongoFriendRequestRepo) ListBySender(senderID string) ([]models.FriendRequest, error) {
	return r.list(bson.M{"senderId": senderID})
}

// ListByRecipient retrieves incoming requests for the user.
func (r *MongoFriendRequestRepo) ListByRecipient(recipientID string) ([]models.FriendRequest, error) {
	return r.list(bson.M{"recipientId": recipientID})
}

func (r *MongoFriendRequestRepo) list(filter bson.M) ([]models.FriendRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.FriendRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode friend requests: %w", err)
	}
	return reqs, nil
}

// HasPendingBetween reports whether a pending request links the two users in
// either direction.
func (r *MongoFriendRequestRepo) HasPendingBetween(userA, userB string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.FriendStatusPending,
		"$or": []bson.M{
			{"senderId": userA, "recipientId": userB},
			{"senderId": userB, "recipientId": userA},
		},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check pending friend requests: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus sets the request status.
func (r *MongoFriendRequestRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update friend request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("friend request with id %s not found", id)
	}
	return nil
}
