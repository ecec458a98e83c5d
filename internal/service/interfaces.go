package service

import (
	"context"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/dto"
)

// ChurnServicer defines the interface for churn service operations
type ChurnServicer interface {
	Predict(req *dto.PredictRequest) *dto.PredictResponse
	PredictByID(ctx context.Context, customerID string) (*dto.CustomerPredictionResponse, error)
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
	Customers(ctx context.Context) ([]dto.CustomerData, error)
	SegmentStats(ctx context.Context, field string) (*dto.SegmentStatsResponse, error)
	ExportHighRisk(ctx context.Context, threshold float64) ([]domain.ExportRow, error)
	EnqueueBatch(ctx context.Context, customers []dto.BatchCustomer) (int, []string)
	ExportThreshold() float64
}
