package consumer

import (
	"context"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// Envelope carries a customer record through the pipeline with its
// acknowledgment callbacks. The scorer stage fills in Prediction before the
// envelope reaches the batch writer.
type Envelope struct {
	Record     *domain.CustomerRecord
	Prediction *domain.Prediction
	ack        func(context.Context) error
	nack       func(context.Context) error
}

// NewEnvelope creates a new message envelope
func NewEnvelope(record *domain.CustomerRecord, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Record: record,
		ack:    ack,
		nack:   nack,
	}
}

// Ack acknowledges successful processing
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack negatively acknowledges processing
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}
