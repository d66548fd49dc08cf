package addressRepo

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

// MongoAddressRepo implements AddressRepository using MongoDB.
type MongoAddressRepo struct {
	coll *mongo.Collection
}

// NewMongoAddressRepo creates a new instance of AddressRepository using MongoDB.
func NewMongoAddressRepo() AddressRepository {
	coll := database.DB().Collection("addresses")
	repo := &MongoAddressRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAddressRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "tripId", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "notes", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new address document.
func (r *MongoAddressRepo) Create(address *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, address); err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update replaces an existing address document.
func (r *MongoAddressRepo) Update(address *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	address.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": address.ID}, address)
	if err != nil {
		return fmt.Errorf("failed to update address with id %s: %w", address.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("address with id %s not found", address.ID)
	}
	return nil
}

// Delete removes an address document by its ID.
func (r *MongoAddressRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete address with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("address with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an address by its unique ID.
func (r *MongoAddressRepo) GetByID(id string) (*models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var address models.Address
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&address); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch address with id %s: %w", id, err)
	}
	return &address, nil
}

// ListByUser retrieves all addresses owned by the user.
func (r *MongoAddressRepo) ListByUser(userID string) ([]models.Address, error) {
	return r.list(bson.M{"userId": userID})
}

// ListByTrip retrieves all addresses referencing the trip.
func (r *MongoAddressRepo) ListByTrip(tripID string) ([]models.Address, error) {
	return r.list(bson.M{"tripId": tripID})
}

func (r *MongoAddressRepo) list(filter bson.M) ([]models.Address, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}
	return addresses, nil
}

// Nearby finds the user's addresses within maxMeters of the point.
func (r *MongoAddressRepo) Nearby(userID string, lng, lat, maxMeters float64) ([]models.Address, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"location": bson.M{
			"$near": bson.M{
				"$geometry":    models.NewGeoPoint(lng, lat),
				"$maxDistance": maxMeters,
			},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("nearby address query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}
	return addresses, nil
}
