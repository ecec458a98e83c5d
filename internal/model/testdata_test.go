package model

import "github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"

// seedRecords mirrors the embedded demo dataset: short-tenure, fiber,
// month-to-month, high-ticket customers churned; long-tenure customers on
// longer contracts did not.
func seedRecords() []domain.CustomerRecord {
	return []domain.CustomerRecord{
		{CustomerID: "C001", TenureMonths: 2, MonthlyCharges: 89.5, Contract: "Month-to-month", Internet: "Fiber", SupportTickets: 3, Churned: true, Labeled: true},
		{CustomerID: "C002", TenureMonths: 24, MonthlyCharges: 55.2, Contract: "One year", Internet: "DSL", SupportTickets: 0, Churned: false, Labeled: true},
		{CustomerID: "C003", TenureMonths: 12, MonthlyCharges: 72.1, Contract: "Month-to-month", Internet: "Fiber", SupportTickets: 1, Churned: true, Labeled: true},
		{CustomerID: "C004", TenureMonths: 48, MonthlyCharges: 40.0, Contract: "Two year", Internet: "None", SupportTickets: 0, Churned: false, Labeled: true},
		{CustomerID: "C005", TenureMonths: 6, MonthlyCharges: 99.9, Contract: "Month-to-month", Internet: "Fiber", SupportTickets: 4, Churned: true, Labeled: true},
		{CustomerID: "C006", TenureMonths: 36, MonthlyCharges: 65.0, Contract: "One year", Internet: "DSL", SupportTickets: 1, Churned: false, Labeled: true},
		{CustomerID: "C007", TenureMonths: 18, MonthlyCharges: 80.3, Contract: "Month-to-month", Internet: "DSL", SupportTickets: 2, Churned: true, Labeled: true},
		{CustomerID: "C008", TenureMonths: 60, MonthlyCharges: 35.5, Contract: "Two year", Internet: "None", SupportTickets: 0, Churned: false, Labeled: true},
		{CustomerID: "C009", TenureMonths: 9, MonthlyCharges: 75.0, Contract: "Month-to-month", Internet: "Fiber", SupportTickets: 2, Churned: true, Labeled: true},
		{CustomerID: "C010", TenureMonths: 30, MonthlyCharges: 58.8, Contract: "One year", Internet: "DSL", SupportTickets: 0, Churned: false, Labeled: true},
	}
}

func trainSeedModel() *Model {
	m, err := Train(seedRecords(), DefaultTrainConfig())
	if err != nil {
		panic(err)
	}
	return m
}
