package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"contract is required"`
}

// DriverData is one ranked feature contribution in an explanation. Feature is
// rendered as "contract=Month-to-month" for a one-hot slot or as the bare
// name for a numeric feature.
type DriverData struct {
	Feature string  `json:"feature" example:"contract=Month-to-month"`
	Impact  float64 `json:"impact" example:"1.73"`
}

// PredictResponse represents a scored ad-hoc record
type PredictResponse struct {
	ChurnProbability float64      `json:"churn_probability" example:"0.87"`
	Prediction       int          `json:"prediction" example:"1"`
	Risk             string       `json:"risk" example:"High"`
	TopDrivers       []DriverData `json:"top_drivers"`
}

// CustomerPredictionResponse represents a scored customer looked up by ID
type CustomerPredictionResponse struct {
	CustomerID       string       `json:"customer_id" example:"C001"`
	ChurnProbability float64      `json:"churn_probability" example:"0.87"`
	Risk             string       `json:"risk" example:"High"`
	RiskFactors      []DriverData `json:"risk_factors"`
}

// CustomerData represents one dataset row
type CustomerData struct {
	CustomerID     string  `json:"customer_id" example:"C001"`
	TenureMonths   int     `json:"tenure_months" example:"2"`
	MonthlyCharges float64 `json:"monthly_charges" example:"89.5"`
	Contract       string  `json:"contract" example:"Month-to-month"`
	Internet       string  `json:"internet" example:"Fiber"`
	SupportTickets int     `json:"support_tickets" example:"3"`
	Churn          int     `json:"churn" example:"1"`
}

// SummaryResponse represents the dataset summary
type SummaryResponse struct {
	Rows       int                `json:"rows" example:"10"`
	ChurnRate  float64            `json:"churn_rate" example:"0.5"`
	Metric     string             `json:"metric" example:"predicted"`
	ByContract map[string]float64 `json:"by_contract"`
	ByInternet map[string]float64 `json:"by_internet"`
}

// SegmentData represents aggregate statistics for one segment value
type SegmentData struct {
	Segment       string  `json:"segment" example:"Month-to-month"`
	Count         int     `json:"count" example:"5"`
	ObservedRate  float64 `json:"observed_rate" example:"1.0"`
	PredictedRate float64 `json:"predicted_rate" example:"0.93"`
	ChurnRate     float64 `json:"churn_rate" example:"0.93"`
}

// SegmentStatsResponse represents the per-segment breakdown for one field
type SegmentStatsResponse struct {
	Field    string        `json:"field" example:"contract"`
	Metric   string        `json:"metric" example:"predicted"`
	Segments []SegmentData `json:"segments"`
}

// ScoreBatchResponse represents an accepted batch scoring request
type ScoreBatchResponse struct {
	Enqueued int      `json:"enqueued" example:"5"`
	Rejected int      `json:"rejected" example:"0"`
	Errors   []string `json:"errors,omitempty"`
	Status   string   `json:"status" example:"accepted"`
}
