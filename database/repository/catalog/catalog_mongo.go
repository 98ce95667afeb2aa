package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository backed by
// the injected database handle.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	return &MongoCatalogRepo{coll: db.Collection("appointmentOption")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetAll returns every treatment in catalog definition order.
func (r *MongoCatalogRepo) GetAll(ctx context.Context) ([]models.Treatment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return treatments, nil
}

// GetNames returns the catalog projected down to treatment names.
func (r *MongoCatalogRepo) GetNames(ctx context.Context) ([]models.Speciality, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch treatment names: %w", err)
	}
	defer cursor.Close(ctx)

	var specialities []models.Speciality
	if err := cursor.All(ctx, &specialities); err != nil {
		return nil, fmt.Errorf("failed to decode treatment names: %w", err)
	}
	return specialities, nil
}
