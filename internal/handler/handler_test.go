package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/dto"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/model"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/repository"
)

const testCORSOrigin = "http://localhost:3000"

// MockChurnService is a mock implementation of service.ChurnServicer
type MockChurnService struct {
	mock.Mock
}

func (m *MockChurnService) Predict(req *dto.PredictRequest) *dto.PredictResponse {
	args := m.Called(req)
	return args.Get(0).(*dto.PredictResponse)
}

func (m *MockChurnService) PredictByID(ctx context.Context, customerID string) (*dto.CustomerPredictionResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CustomerPredictionResponse), args.Error(1)
}

func (m *MockChurnService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}

func (m *MockChurnService) Customers(ctx context.Context) ([]dto.CustomerData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CustomerData), args.Error(1)
}

func (m *MockChurnService) SegmentStats(ctx context.Context, field string) (*dto.SegmentStatsResponse, error) {
	args := m.Called(ctx, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SegmentStatsResponse), args.Error(1)
}

func (m *MockChurnService) ExportHighRisk(ctx context.Context, threshold float64) ([]domain.ExportRow, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExportRow), args.Error(1)
}

func (m *MockChurnService) EnqueueBatch(ctx context.Context, customers []dto.BatchCustomer) (int, []string) {
	args := m.Called(ctx, customers)
	var errs []string
	if args.Get(1) != nil {
		errs = args.Get(1).([]string)
	}
	return args.Int(0), errs
}

func (m *MockChurnService) ExportThreshold() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestHandler_HealthCheck(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_Predict_Success(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	predictReq := dto.PredictRequest{
		TenureMonths:   intPtr(2),
		MonthlyCharges: floatPtr(89.5),
		Contract:       "Month-to-month",
		Internet:       "Fiber",
		SupportTickets: intPtr(3),
	}

	mockService.On("Predict", &predictReq).Return(&dto.PredictResponse{
		ChurnProbability: 0.87,
		Prediction:       1,
		Risk:             "High",
		TopDrivers: []dto.DriverData{
			{Feature: "contract=Month-to-month", Impact: 1.73},
		},
	})

	body, _ := json.Marshal(predictReq)
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.PredictResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 0.87, response.ChurnProbability)
	assert.Equal(t, 1, response.Prediction)
	assert.Equal(t, "High", response.Risk)
	mockService.AssertExpectations(t)
}

func TestHandler_Predict_InvalidJSON(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	invalidJSON := []byte(`{"tenure_months": 2, invalid}`)
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(invalidJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockService.AssertNotCalled(t, "Predict")
}

func TestHandler_Predict_MissingRequiredFields(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	body := []byte(`{"tenure_months": 2, "monthly_charges": 89.5}`)
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Predict")
}

func TestHandler_Predict_ZeroTicketsAccepted(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	predictReq := dto.PredictRequest{
		TenureMonths:   intPtr(60),
		MonthlyCharges: floatPtr(35.5),
		Contract:       "Two year",
		Internet:       "None",
		SupportTickets: intPtr(0),
	}

	mockService.On("Predict", mock.AnythingOfType("*dto.PredictRequest")).Return(&dto.PredictResponse{
		ChurnProbability: 0.05,
		Prediction:       0,
		Risk:             "Low",
	})

	body, _ := json.Marshal(predictReq)
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_PredictByID_Success(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	mockService.On("PredictByID", mock.Anything, "C001").Return(&dto.CustomerPredictionResponse{
		CustomerID:       "C001",
		ChurnProbability: 0.91,
		Risk:             "High",
		RiskFactors: []dto.DriverData{
			{Feature: "contract=Month-to-month", Impact: 1.73},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/predict/C001", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.CustomerPredictionResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "C001", response.CustomerID)
	mockService.AssertExpectations(t)
}

func TestHandler_PredictByID_NotFound(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	mockService.On("PredictByID", mock.Anything, "C999").
		Return(nil, fmt.Errorf("lookup customer %q: %w", "C999", repository.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/predict/C999", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "not_found", response.Error)
}

func TestHandler_DataSummary(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	mockService.On("Summary", mock.Anything).Return(&dto.SummaryResponse{
		Rows:      10,
		ChurnRate: 0.5,
		Metric:    "predicted",
		ByContract: map[string]float64{
			"Month-to-month": 0.93,
		},
		ByInternet: map[string]float64{
			"Fiber": 0.88,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/data/summary", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.SummaryResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 10, response.Rows)
	assert.Equal(t, 0.5, response.ChurnRate)
	mockService.AssertExpectations(t)
}

func TestHandler_SegmentStats_UnknownField(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	mockService.On("SegmentStats", mock.Anything, "zodiac_sign").
		Return(nil, fmt.Errorf("%w: %q", model.ErrUnknownSegmentField, "zodiac_sign"))

	req := httptest.NewRequest(http.MethodGet, "/data/segments/zodiac_sign", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
}

func TestHandler_ExportHighRisk_DefaultThreshold(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	mockService.On("ExportThreshold").Return(0.7)
	mockService.On("ExportHighRisk", mock.Anything, 0.7).Return([]domain.ExportRow{
		{CustomerID: "C001", Contract: "Month-to-month", Internet: "Fiber", MonthlyCharges: 89.5, SupportTickets: 3, Probability: 0.91},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/high-risk", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "customer_id,contract,internet,monthly_charges,support_tickets,probability", lines[0])
	assert.Equal(t, "C001,Month-to-month,Fiber,89.50,3,0.9100", lines[1])
	mockService.AssertExpectations(t)
}

func TestHandler_ExportHighRisk_ThresholdOverride(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	mockService.On("ExportThreshold").Return(0.7)
	mockService.On("ExportHighRisk", mock.Anything, 0.5).Return([]domain.ExportRow{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/high-risk?threshold=0.5", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_ExportHighRisk_InvalidThreshold(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	req := httptest.NewRequest(http.MethodGet, "/export/high-risk?threshold=1.5", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ExportHighRisk")
}

func TestHandler_ScoreBatch_Accepted(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	batchReq := dto.ScoreBatchRequest{
		Customers: []dto.BatchCustomer{
			{CustomerID: "C100", TenureMonths: intPtr(3), MonthlyCharges: floatPtr(80), Contract: "Month-to-month", Internet: "Fiber", SupportTickets: intPtr(2)},
		},
	}

	mockService.On("EnqueueBatch", mock.Anything, batchReq.Customers).Return(1, nil)

	body, _ := json.Marshal(batchReq)
	req := httptest.NewRequest(http.MethodPost, "/score/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var response dto.ScoreBatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Enqueued)
	assert.Equal(t, "accepted", response.Status)
	mockService.AssertExpectations(t)
}

func TestHandler_ScoreBatch_EmptyBatch(t *testing.T) {
	mockService := new(MockChurnService)
	log := zap.NewNop()

	handler := NewHandler(mockService, testCORSOrigin, log)

	body := []byte(`{"customers": []}`)
	req := httptest.NewRequest(http.MethodPost, "/score/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "EnqueueBatch")
}
