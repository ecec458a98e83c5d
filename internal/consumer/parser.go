package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// JSONCustomerParser implements MessageParser for JSON-formatted customer messages
type JSONCustomerParser struct{}

// NewJSONCustomerParser creates a new JSON customer parser
func NewJSONCustomerParser() *JSONCustomerParser {
	return &JSONCustomerParser{}
}

// Parse parses a JSON message body into a CustomerRecord. A record that
// cannot be scored (missing ID, negative counts) is rejected here so the
// malformed message can be dropped instead of poisoning the batch.
func (p *JSONCustomerParser) Parse(body []byte) (*domain.CustomerRecord, error) {
	var msgBody map[string]interface{}
	if err := json.Unmarshal(body, &msgBody); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	record := &domain.CustomerRecord{
		CustomerID:     getStringField(msgBody, "customer_id"),
		TenureMonths:   getIntField(msgBody, "tenure_months"),
		MonthlyCharges: getFloatField(msgBody, "monthly_charges"),
		Contract:       getStringField(msgBody, "contract"),
		Internet:       getStringField(msgBody, "internet"),
		SupportTickets: getIntField(msgBody, "support_tickets"),
	}

	if record.CustomerID == "" {
		return nil, fmt.Errorf("customer_id is required")
	}
	if record.TenureMonths < 0 {
		return nil, fmt.Errorf("tenure_months must be non-negative, got %d", record.TenureMonths)
	}
	if record.MonthlyCharges < 0 {
		return nil, fmt.Errorf("monthly_charges must be non-negative, got %f", record.MonthlyCharges)
	}
	if record.SupportTickets < 0 {
		return nil, fmt.Errorf("support_tickets must be non-negative, got %d", record.SupportTickets)
	}

	return record, nil
}

// Helper functions for extracting fields from parsed JSON
func getStringField(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

func getIntField(m map[string]interface{}, key string) int {
	if val, ok := m[key].(float64); ok {
		return int(val)
	}
	return 0
}

func getFloatField(m map[string]interface{}, key string) float64 {
	if val, ok := m[key].(float64); ok {
		return val
	}
	return 0
}
