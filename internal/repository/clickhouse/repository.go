package clickhouse

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// Repository implements PredictionRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse prediction repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the predictions table with a ReplacingMergeTree
// engine so re-scoring a customer supersedes the previous row.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS predictions (
		customer_id String,
		contract LowCardinality(String),
		internet LowCardinality(String),
		tenure_months Int32,
		monthly_charges Float64,
		support_tickets Int32,
		probability Float64,
		risk_label LowCardinality(String),
		scored_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (customer_id)
	ORDER BY (customer_id)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create predictions table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of predictions into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, predictions []*domain.Prediction) (int, error) {
	if len(predictions) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO predictions")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, prediction := range predictions {
		if prediction.Version == 0 {
			prediction.Version = uint64(time.Now().UnixNano())
		}

		err := batch.Append(
			prediction.CustomerID,
			prediction.Contract,
			prediction.Internet,
			prediction.TenureMonths,
			prediction.MonthlyCharges,
			prediction.SupportTickets,
			prediction.Probability,
			prediction.RiskLabel,
			prediction.ScoredAt,
			prediction.Version,
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append prediction to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
