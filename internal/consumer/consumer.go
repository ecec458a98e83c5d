package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/config"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/model"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/queue"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/repository"
)

// Consumer orchestrates a pipeline of stages that score queued customer
// records and persist the predictions
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	scorer      *ScorerStage
	batchWriter *BatchWriter
}

// NewConsumer creates a new consumer with a pipeline architecture
func NewConsumer(cfg *config.Config, m *model.Model, queueConsumer queue.QueueConsumer, repo repository.PredictionRepository, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 20,
		BufferSize:      100,
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONCustomerParser(), log)

	scorer := NewScorerStage(m, log)

	batchWriter := NewBatchWriter(repo, BatchWriterConfig{
		MaxBatchSize: cfg.Scorer.BatchSizeMax,
		FlushTimeout: time.Duration(cfg.Scorer.BatchTimeoutSec) * time.Second,
	}, log)

	return &Consumer{
		receiver:    receiver,
		parser:      parser,
		scorer:      scorer,
		batchWriter: batchWriter,
	}
}

// Start begins the consumer pipeline
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, 100)
	recordChan := make(chan *Envelope, 100)
	scoredChan := make(chan *Envelope, 100)

	var wg sync.WaitGroup

	// Start all pipeline stages
	wg.Add(4)

	// Stage 1: Receive messages from SQS
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	// Stage 2: Parse messages into customer envelopes
	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, recordChan)
	}()

	// Stage 3: Score records with the trained model
	go func() {
		defer wg.Done()
		c.scorer.Start(ctx, recordChan, scoredChan)
	}()

	// Stage 4: Batch and write predictions to the repository
	go func() {
		defer wg.Done()
		c.batchWriter.Start(ctx, scoredChan)
	}()

	wg.Wait()
	return nil
}
