package domain

// CustomerRecord represents a single customer row from the dataset
type CustomerRecord struct {
	CustomerID     string  `json:"customer_id"`
	TenureMonths   int     `json:"tenure_months"`
	MonthlyCharges float64 `json:"monthly_charges"`
	Contract       string  `json:"contract"`
	Internet       string  `json:"internet"`
	SupportTickets int     `json:"support_tickets"`

	// Churned is only meaningful when Labeled is true; unlabeled records
	// can be scored but never contribute to training or observed rates.
	Churned bool `json:"churn"`
	Labeled bool `json:"-"`
}

// SegmentStat holds aggregate statistics for one distinct value of a
// grouping field.
type SegmentStat struct {
	Segment       string
	Count         int
	ObservedRate  float64
	PredictedRate float64
}

// ExportRow is one row of the high-risk export, in its fixed column order.
type ExportRow struct {
	CustomerID     string
	Contract       string
	Internet       string
	MonthlyCharges float64
	SupportTickets int
	Probability    float64
}
