package consumer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// MockPredictionRepository is a mock implementation of repository.PredictionRepository
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) InsertBatch(ctx context.Context, predictions []*domain.Prediction) (int, error) {
	args := m.Called(ctx, predictions)
	return args.Int(0), args.Error(1)
}

func (m *MockPredictionRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPredictionRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPredictionRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func scoredEnvelope(customerID string, acked, nacked *atomic.Int32) *Envelope {
	record := &domain.CustomerRecord{CustomerID: customerID, Contract: "Month-to-month"}

	ack := func(ctx context.Context) error {
		if acked != nil {
			acked.Add(1)
		}
		return nil
	}
	nack := func(ctx context.Context) error {
		if nacked != nil {
			nacked.Add(1)
		}
		return nil
	}

	envelope := NewEnvelope(record, ack, nack)
	envelope.Prediction = &domain.Prediction{
		CustomerID:  customerID,
		Contract:    record.Contract,
		Probability: 0.9,
		RiskLabel:   "High",
		ScoredAt:    time.Now(),
		Version:     1,
	}
	return envelope
}

func TestBatchWriter_BatchSizeThreshold(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 3,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	var acked atomic.Int32
	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(predictions []*domain.Prediction) bool {
		return len(predictions) == 3
	})).Return(3, nil)

	in := make(chan *Envelope, 3)
	for _, id := range []string{"C100", "C101", "C102"} {
		in <- scoredEnvelope(id, &acked, nil)
	}
	close(in)

	writer.Start(context.Background(), in)

	assert.Equal(t, int32(3), acked.Load())
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_FlushOnChannelClose(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 100,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	var acked atomic.Int32
	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(predictions []*domain.Prediction) bool {
		return len(predictions) == 2
	})).Return(2, nil)

	in := make(chan *Envelope, 2)
	in <- scoredEnvelope("C100", &acked, nil)
	in <- scoredEnvelope("C101", &acked, nil)
	close(in)

	writer.Start(context.Background(), in)

	assert.Equal(t, int32(2), acked.Load())
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_FlushOnTimeout(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 100,
		FlushTimeout: 50 * time.Millisecond,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	var acked atomic.Int32
	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan *Envelope, 1)
	in <- scoredEnvelope("C100", &acked, nil)

	go writer.Start(ctx, in)

	assert.Eventually(t, func() bool {
		return acked.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	close(in)
}

func TestBatchWriter_InsertFailureNacks(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	var acked, nacked atomic.Int32
	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).
		Return(0, errors.New("clickhouse unavailable"))

	in := make(chan *Envelope, 2)
	in <- scoredEnvelope("C100", &acked, &nacked)
	in <- scoredEnvelope("C101", &acked, &nacked)
	close(in)

	writer.Start(context.Background(), in)

	assert.Equal(t, int32(0), acked.Load())
	assert.Equal(t, int32(2), nacked.Load())
	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_PartialInsertNacks(t *testing.T) {
	mockRepo := new(MockPredictionRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	var acked, nacked atomic.Int32
	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(1, nil)

	in := make(chan *Envelope, 2)
	in <- scoredEnvelope("C100", &acked, &nacked)
	in <- scoredEnvelope("C101", &acked, &nacked)
	close(in)

	writer.Start(context.Background(), in)

	assert.Equal(t, int32(0), acked.Load())
	assert.Equal(t, int32(2), nacked.Load())
	mockRepo.AssertExpectations(t)
}
