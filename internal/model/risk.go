package model

// RiskLevel buckets a churn probability for display
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk-label cut points. These are fixed; the export threshold in config is a
// separate knob and changing one must not move the other.
const (
	riskHighCut   = 0.7
	riskMediumCut = 0.4
)

// ClassifyRisk maps a probability to its risk label
func ClassifyRisk(probability float64) RiskLevel {
	switch {
	case probability >= riskHighCut:
		return RiskHigh
	case probability >= riskMediumCut:
		return RiskMedium
	default:
		return RiskLow
	}
}
