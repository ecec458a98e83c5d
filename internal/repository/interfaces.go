package repository

import (
	"context"
	"errors"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// ErrNotFound signals a lookup that matched no customer. Callers decide how
// to present it; it is never a fault.
var ErrNotFound = errors.New("customer not found")

// CustomerRepository defines read access to the customer dataset
type CustomerRepository interface {
	// List returns every record in the dataset, in stable order
	List(ctx context.Context) ([]domain.CustomerRecord, error)

	// GetByID returns the record with the given customer ID, or ErrNotFound
	GetByID(ctx context.Context, customerID string) (*domain.CustomerRecord, error)
}

// PredictionRepository defines the interface for prediction storage operations
type PredictionRepository interface {
	// InsertBatch inserts a batch of predictions into the storage
	InsertBatch(ctx context.Context, predictions []*domain.Prediction) (int, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
