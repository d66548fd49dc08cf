package tripRepo

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

// MongoTripRepo implements TripRepository using MongoDB.
type MongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo creates a new instance of TripRepository using MongoDB.
func NewMongoTripRepo() TripRepository {
	coll := database.DB().Collection("trips")
	repo := &MongoTripRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "collaborators.userId", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "destination", Value: "text"},
			{Key: "description", Value: "text"},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new trip document.
func (r *MongoTripRepo) Create(trip *models.Trip) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set update to a trip document.
func (r *MongoTripRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update trip with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}

// Delete removes a trip document by its ID.
func (r *MongoTripRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a trip by its unique ID.
func (r *MongoTripRepo) GetByID(id string) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.Trip
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trip with id %s: %w", id, err)
	}
	return &trip, nil
}

// ListForUser retrieves trips the user owns or collaborates on.
func (r *MongoTripRepo) ListForUser(userID string, filter TripFilter) ([]models.Trip, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"$or": []bson.M{
			{"ownerId": userID},
			{"collaborators.userId": userID},
		},
	}
	if filter.Visibility != "" {
		query["visibility"] = filter.Visibility
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

// Search runs a text search over the user's visible trips.
func (r *MongoTripRepo) Search(userID, query string) ([]models.Trip, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"$text": bson.M{"$search": query},
		"$or": []bson.M{
			{"ownerId": userID},
			{"collaborators.userId": userID},
			{"visibility": models.TripVisibilityPublic},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("trip search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

// Nearby finds public trips whose location lies within maxMeters of the point.
func (r *MongoTripRepo) Nearby(lng, lat, maxMeters float64) ([]models.Trip, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"visibility": models.TripVisibilityPublic,
		"location": bson.M{
			"$near": bson.M{
				"$geometry":    models.NewGeoPoint(lng, lat),
				"$maxDistance": maxMeters,
			},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("nearby trip query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

// AddCollaborator pushes a collaborator entry. The $elemMatch-style guard in
// the filter keeps the same user from appearing twice in the array.
func (r *MongoTripRepo) AddCollaborator(tripID string, collab models.Collaborator) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                   tripID,
		"collaborators.userId": bson.M{"$ne": collab.UserID},
	}
	update := bson.M{
		"$push": bson.M{"collaborators": collab},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to add collaborator to trip %s: %w", tripID, err)
	}
	return result.ModifiedCount > 0, nil
}

// IncrementStat applies a delta to one of the embedded stats counters.
func (r *MongoTripRepo) IncrementStat(tripID, field string, delta float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"stats." + field: delta}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": tripID}, update); err != nil {
		return fmt.Errorf("failed to increment stat %s for trip %s: %w", field, tripID, err)
	}
	return nil
}
