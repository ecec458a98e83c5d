package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds process-level settings
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8000"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8000"`
	CORSOrigin  string `envconfig:"SERVICE_CORS_ORIGIN" default:"http://localhost:3000"`
}

// Model holds the analytics knobs of the trained classifier. SegmentMetric
// selects which mean is reported as a segment's churn rate; ExportThreshold
// is the default high-risk cut for the CSV export, independent of the fixed
// risk-label cut points.
type Model struct {
	SegmentMetric   string  `envconfig:"MODEL_SEGMENT_METRIC" default:"predicted"`
	ExportThreshold float64 `envconfig:"MODEL_EXPORT_THRESHOLD" default:"0.7"`
}

// ClickHouse holds connection settings for the prediction store
type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port            string `envconfig:"CLICKHOUSE_PORT" required:"true"`
	Database        string `envconfig:"CLICKHOUSE_DB" required:"true"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

// SQS holds queue settings for the batch-scoring pipeline
type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

// Scorer holds settings for the batch-scoring consumer
type Scorer struct {
	BatchSizeMax    int    `envconfig:"SCORER_BATCH_SIZE_MAX" default:"500"`
	BatchTimeoutSec int    `envconfig:"SCORER_BATCH_TIMEOUT_SEC" default:"10"`
	HealthCheckPort string `envconfig:"SCORER_HEALTH_CHECK_PORT" default:"8081"`
}

// Config is the full environment-driven configuration
type Config struct {
	Service    Service
	Model      Model
	ClickHouse ClickHouse
	SQS        SQS
	Scorer     Scorer
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
