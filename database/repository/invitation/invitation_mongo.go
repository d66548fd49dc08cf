package invitationRepo

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

// MongoInvitationRepo implements InvitationRepository using MongoDB. It holds
// a handle to the trips collection as well because invitation acceptance
// touches both collections transactionally.
type MongoInvitationRepo struct {
	coll     *mongo.Collection
	tripColl *mongo.Collection
}

// NewMongoInvitationRepo creates a new instance of InvitationRepository using MongoDB.
func NewMongoInvitationRepo() InvitationRepository {
	db := database.DB()
	repo := &MongoInvitationRepo{
		coll:     db.Collection("trip_invitations"),
		tripColl: db.Collection("trips"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInvitationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "inviteeEmail", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "inviterId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "tripId", Value: 1}}},
		// TTL cleanup of stale invitations, 30 days past expiry.
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(30 * 24 * 3600)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new invitation document.
func (r *MongoInvitationRepo) Create(inv *models.TripInvitation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

// GetByToken retrieves an invitation by its opaque token.
func (r *MongoInvitationRepo) GetByToken(token string) (*models.TripInvitation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.TripInvitation
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invitation by token: %w", err)
	}
	return &inv, nil
}

// ListByInviteeEmail retrieves invitations addressed to the email, optionally
// filtered by status.
func (r *MongoInvitationRepo) ListByInviteeEmail(email, status string) ([]models.TripInvitation, error) {
	filter := bson.M{"inviteeEmail": email}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ListByInviter retrieves invitations sent by the user, optionally filtered
// by status.
func (r *MongoInvitationRepo) ListByInviter(inviterID, status string) ([]models.TripInvitation, error) {
	filter := bson.M{"inviterId": inviterID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

func (r *MongoInvitationRepo) list(filter bson.M) ([]models.TripInvitation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer cursor.Close(ctx)

	var invs []models.TripInvitation
	if err := cursor.All(ctx, &invs); err != nil {
		return nil, fmt.Errorf("failed to decode invitations: %w", err)
	}
	return invs, nil
}

// HasPending reports whether a pending invitation to the email exists for
// the trip.
func (r *MongoInvitationRepo) HasPending(tripID, inviteeEmail string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"tripId":       tripID,
		"inviteeEmail": inviteeEmail,
		"status":       models.InvitationStatusPending,
		"expiresAt":    bson.M{"$gt": time.Now()},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus sets the invitation status.
func (r *MongoInvitationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update invitation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invitation with id %s not found", id)
	}
	return nil
}

// DeleteByTrip removes every invitation referencing the trip.
func (r *MongoInvitationRepo) DeleteByTrip(tripID string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"tripId": tripID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete invitations for trip %s: %w", tripID, err)
	}
	return result.DeletedCount, nil
}
