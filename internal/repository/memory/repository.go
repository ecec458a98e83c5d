package memory

import (
	"context"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/repository"
)

// Repository implements CustomerRepository over an in-memory dataset. The
// records are loaded once and never mutated, so reads need no locking.
type Repository struct {
	records []domain.CustomerRecord
	byID    map[string]int
}

// NewRepository creates an in-memory customer repository from the given records
func NewRepository(records []domain.CustomerRecord) *Repository {
	byID := make(map[string]int, len(records))
	for i := range records {
		byID[records[i].CustomerID] = i
	}
	return &Repository{records: records, byID: byID}
}

// List returns every record in dataset order
func (r *Repository) List(_ context.Context) ([]domain.CustomerRecord, error) {
	return r.records, nil
}

// GetByID returns the record with the given customer ID, or ErrNotFound
func (r *Repository) GetByID(_ context.Context, customerID string) (*domain.CustomerRecord, error) {
	i, ok := r.byID[customerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r.records[i], nil
}
