package templateRepo

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

// TemplateRepository defines data access for the trip_templates collection.
type TemplateRepository interface {
	GetByID(id string) (*models.TripTemplate, error)
	GetAll() ([]models.TripTemplate, error)
}

// MongoTemplateRepo implements TemplateRepository using MongoDB.
type MongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo creates a new instance of TemplateRepository using MongoDB.
func NewMongoTemplateRepo() TemplateRepository {
	coll := database.DB().Collection("trip_templates")
	repo := &MongoTemplateRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTemplateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a template by its unique ID.
func (r *MongoTemplateRepo) GetByID(id string) (*models.TripTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tpl models.TripTemplate
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tpl); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch template with id %s: %w", id, err)
	}
	return &tpl, nil
}

// GetAll retrieves all templates.
func (r *MongoTemplateRepo) GetAll() ([]models.TripTemplate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.TripTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	return templates, nil
}
