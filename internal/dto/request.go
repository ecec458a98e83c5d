package dto

import "github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"

// PredictRequest represents a single prediction request. The numeric fields
// are pointers so that a legitimate zero (e.g. no support tickets) is not
// rejected by the required binding.
type PredictRequest struct {
	TenureMonths   *int     `json:"tenure_months" binding:"required,gte=0" example:"2"`
	MonthlyCharges *float64 `json:"monthly_charges" binding:"required,gte=0" example:"89.5"`
	Contract       string   `json:"contract" binding:"required" example:"Month-to-month"`
	Internet       string   `json:"internet" binding:"required" example:"Fiber"`
	SupportTickets *int     `json:"support_tickets" binding:"required,gte=0" example:"3"`
}

// Record converts the validated request into a domain record
func (r *PredictRequest) Record() domain.CustomerRecord {
	return domain.CustomerRecord{
		TenureMonths:   *r.TenureMonths,
		MonthlyCharges: *r.MonthlyCharges,
		Contract:       r.Contract,
		Internet:       r.Internet,
		SupportTickets: *r.SupportTickets,
	}
}

// BatchCustomer is one customer submitted for asynchronous batch scoring
type BatchCustomer struct {
	CustomerID     string   `json:"customer_id" binding:"required" example:"C042"`
	TenureMonths   *int     `json:"tenure_months" binding:"required,gte=0" example:"7"`
	MonthlyCharges *float64 `json:"monthly_charges" binding:"required,gte=0" example:"91.0"`
	Contract       string   `json:"contract" binding:"required" example:"Month-to-month"`
	Internet       string   `json:"internet" binding:"required" example:"Fiber"`
	SupportTickets *int     `json:"support_tickets" binding:"required,gte=0" example:"2"`
}

// Record converts the batch entry into a domain record
func (c *BatchCustomer) Record() domain.CustomerRecord {
	return domain.CustomerRecord{
		CustomerID:     c.CustomerID,
		TenureMonths:   *c.TenureMonths,
		MonthlyCharges: *c.MonthlyCharges,
		Contract:       c.Contract,
		Internet:       c.Internet,
		SupportTickets: *c.SupportTickets,
	}
}

// ScoreBatchRequest represents a batch scoring request
type ScoreBatchRequest struct {
	Customers []BatchCustomer `json:"customers" binding:"required,min=1,max=1000,dive"`
}

// ExportRequest represents the high-risk export query parameters
type ExportRequest struct {
	Threshold *float64 `form:"threshold" binding:"omitempty,gte=0,lte=1" example:"0.7"`
}
