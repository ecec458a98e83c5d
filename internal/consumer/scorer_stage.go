package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/model"
)

// ScorerStage runs the trained model over parsed customer records. The model
// is immutable, so the stage needs no synchronization of its own.
type ScorerStage struct {
	model *model.Model
	log   *zap.Logger
}

// NewScorerStage creates a new scorer stage
func NewScorerStage(m *model.Model, log *zap.Logger) *ScorerStage {
	return &ScorerStage{
		model: m,
		log:   log,
	}
}

// Start scores incoming envelopes and forwards them with predictions attached
func (s *ScorerStage) Start(ctx context.Context, in <-chan *Envelope, out chan<- *Envelope) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scorer stage shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				s.log.Info("Scorer stage input channel closed")
				return
			}

			envelope.Prediction = s.score(envelope.Record)

			select {
			case <-ctx.Done():
				return
			case out <- envelope:
				// Envelope sent to next stage
			}
		}
	}
}

// score runs encode, score, and classify for a single record
func (s *ScorerStage) score(record *domain.CustomerRecord) *domain.Prediction {
	vec := s.model.Encode(record)
	probability := s.model.Score(vec)

	s.log.Debug("Customer scored",
		zap.String("customer_id", record.CustomerID),
		zap.Float64("probability", probability))

	return &domain.Prediction{
		CustomerID:     record.CustomerID,
		Contract:       record.Contract,
		Internet:       record.Internet,
		TenureMonths:   int32(record.TenureMonths),
		MonthlyCharges: record.MonthlyCharges,
		SupportTickets: int32(record.SupportTickets),
		Probability:    probability,
		RiskLabel:      string(model.ClassifyRisk(probability)),
		ScoredAt:       time.Now(),
		Version:        uint64(time.Now().UnixNano()),
	}
}
