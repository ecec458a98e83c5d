package domain

import "time"

// Prediction represents a scored customer stored in ClickHouse
type Prediction struct {
	CustomerID     string    `ch:"customer_id"`
	Contract       string    `ch:"contract"`
	Internet       string    `ch:"internet"`
	TenureMonths   int32     `ch:"tenure_months"`
	MonthlyCharges float64   `ch:"monthly_charges"`
	SupportTickets int32     `ch:"support_tickets"`
	Probability    float64   `ch:"probability"`
	RiskLabel      string    `ch:"risk_label"`
	ScoredAt       time.Time `ch:"scored_at"`
	Version        uint64    `ch:"version"`
}
