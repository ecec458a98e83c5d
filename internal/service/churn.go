package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/dto"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/model"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/queue"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/repository"
)

// Explanation depth differs per call site: the ad-hoc endpoint reports more
// drivers than the per-customer lookup.
const (
	topDriversAdHoc = 6
	topDriversByID  = 3
)

// ChurnService serves predictions, explanations, and dataset analytics over
// an immutable trained model. Every method is a pure read, so the service is
// safe under concurrent requests without locking.
type ChurnService struct {
	model           *model.Model
	customers       repository.CustomerRepository
	publisher       queue.QueuePublisher
	metric          model.SegmentMetric
	exportThreshold float64
	log             *zap.Logger
}

// NewChurnService creates a new churn service around a trained model
func NewChurnService(
	m *model.Model,
	customers repository.CustomerRepository,
	publisher queue.QueuePublisher,
	metric model.SegmentMetric,
	exportThreshold float64,
	log *zap.Logger,
) *ChurnService {
	return &ChurnService{
		model:           m,
		customers:       customers,
		publisher:       publisher,
		metric:          metric,
		exportThreshold: exportThreshold,
		log:             log,
	}
}

// ExportThreshold returns the configured default high-risk export cut
func (s *ChurnService) ExportThreshold() float64 {
	return s.exportThreshold
}

// Predict scores an ad-hoc record and explains the score
func (s *ChurnService) Predict(req *dto.PredictRequest) *dto.PredictResponse {
	record := req.Record()
	vec := s.model.Encode(&record)
	probability := s.model.Score(vec)

	prediction := 0
	if s.model.Predict(vec) {
		prediction = 1
	}

	return &dto.PredictResponse{
		ChurnProbability: probability,
		Prediction:       prediction,
		Risk:             string(model.ClassifyRisk(probability)),
		TopDrivers:       driverData(s.model.Explain(vec, topDriversAdHoc)),
	}
}

// PredictByID looks a customer up in the dataset and scores it. Returns
// repository.ErrNotFound (wrapped) when the ID matches no record.
func (s *ChurnService) PredictByID(ctx context.Context, customerID string) (*dto.CustomerPredictionResponse, error) {
	record, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("lookup customer %q: %w", customerID, err)
	}

	vec := s.model.Encode(record)
	probability := s.model.Score(vec)

	return &dto.CustomerPredictionResponse{
		CustomerID:       record.CustomerID,
		ChurnProbability: probability,
		Risk:             string(model.ClassifyRisk(probability)),
		RiskFactors:      driverData(s.model.Explain(vec, topDriversByID)),
	}, nil
}

// Summary reports the dataset size, the overall churn rate under the
// configured segment metric, and the per-contract and per-internet rates.
func (s *ChurnService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	records, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	overall := domain.SegmentStat{Count: len(records)}
	var labeled int
	for i := range records {
		r := &records[i]
		overall.PredictedRate += s.model.Probability(r) / float64(len(records))
		if r.Labeled {
			labeled++
			if r.Churned {
				overall.ObservedRate++
			}
		}
	}
	if labeled > 0 {
		overall.ObservedRate /= float64(labeled)
	}

	response := &dto.SummaryResponse{
		Rows:      len(records),
		ChurnRate: s.metric.Rate(overall),
		Metric:    string(s.metric),
	}

	byContract, err := s.segmentRates(records, "contract")
	if err != nil {
		return nil, err
	}
	byInternet, err := s.segmentRates(records, "internet")
	if err != nil {
		return nil, err
	}
	response.ByContract = byContract
	response.ByInternet = byInternet

	return response, nil
}

func (s *ChurnService) segmentRates(records []domain.CustomerRecord, field string) (map[string]float64, error) {
	stats, err := model.AggregateBySegment(s.model, records, field)
	if err != nil {
		return nil, fmt.Errorf("aggregate by %s: %w", field, err)
	}
	rates := make(map[string]float64, len(stats))
	for _, stat := range stats {
		rates[stat.Segment] = s.metric.Rate(stat)
	}
	return rates, nil
}

// Customers returns the full dataset
func (s *ChurnService) Customers(ctx context.Context) ([]dto.CustomerData, error) {
	records, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	data := make([]dto.CustomerData, 0, len(records))
	for _, r := range records {
		churn := 0
		if r.Labeled && r.Churned {
			churn = 1
		}
		data = append(data, dto.CustomerData{
			CustomerID:     r.CustomerID,
			TenureMonths:   r.TenureMonths,
			MonthlyCharges: r.MonthlyCharges,
			Contract:       r.Contract,
			Internet:       r.Internet,
			SupportTickets: r.SupportTickets,
			Churn:          churn,
		})
	}
	return data, nil
}

// SegmentStats returns the per-segment breakdown for a grouping field
func (s *ChurnService) SegmentStats(ctx context.Context, field string) (*dto.SegmentStatsResponse, error) {
	records, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	stats, err := model.AggregateBySegment(s.model, records, field)
	if err != nil {
		return nil, err
	}

	response := &dto.SegmentStatsResponse{
		Field:    field,
		Metric:   string(s.metric),
		Segments: make([]dto.SegmentData, 0, len(stats)),
	}
	for _, stat := range stats {
		response.Segments = append(response.Segments, dto.SegmentData{
			Segment:       stat.Segment,
			Count:         stat.Count,
			ObservedRate:  stat.ObservedRate,
			PredictedRate: stat.PredictedRate,
			ChurnRate:     s.metric.Rate(stat),
		})
	}
	return response, nil
}

// ExportHighRisk returns the export rows for every customer at or above the
// probability threshold, in dataset order.
func (s *ChurnService) ExportHighRisk(ctx context.Context, threshold float64) ([]domain.ExportRow, error) {
	records, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return model.SelectForExport(s.model, records, threshold), nil
}

// EnqueueBatch publishes customers to the scoring queue one by one, keeping
// going past individual failures. Returns the enqueued count and per-customer
// error messages.
func (s *ChurnService) EnqueueBatch(ctx context.Context, customers []dto.BatchCustomer) (int, []string) {
	var enqueued int
	var errors []string

	for i := range customers {
		if err := s.publisher.PublishCustomer(ctx, &customers[i]); err != nil {
			s.log.Warn("Failed to enqueue customer for scoring",
				zap.String("customer_id", customers[i].CustomerID),
				zap.Error(err))
			errors = append(errors, err.Error())
			continue
		}
		enqueued++
	}

	return enqueued, errors
}

func driverData(contributions []model.Contribution) []dto.DriverData {
	drivers := make([]dto.DriverData, 0, len(contributions))
	for _, c := range contributions {
		drivers = append(drivers, dto.DriverData{
			Feature: c.Dimension.Label(),
			Impact:  c.Value,
		})
	}
	return drivers
}
