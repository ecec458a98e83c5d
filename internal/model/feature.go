package model

import (
	"sort"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// Feature names, in the order they appear in the encoded vector: one-hot
// blocks for the categorical features first, then the numeric passthroughs.
var (
	categoricalFeatures = []string{"contract", "internet"}
	numericFeatures     = []string{"tenure_months", "monthly_charges", "support_tickets"}
)

// Kind discriminates categorical one-hot dimensions from numeric passthroughs
type Kind int

const (
	KindCategorical Kind = iota
	KindNumeric
)

// Dimension is the identity of one slot in the encoded vector: either a
// (feature, level) pair for a one-hot slot or a bare numeric feature.
type Dimension struct {
	Kind    Kind
	Feature string
	Level   string
}

// Label renders the dimension for display: "contract=Two year" for a
// categorical slot, "tenure_months" for a numeric one.
func (d Dimension) Label() string {
	if d.Kind == KindCategorical {
		return d.Feature + "=" + d.Level
	}
	return d.Feature
}

// Schema is the frozen encoding layout fitted at training time: the ordered
// dimension list and the categorical vocabulary backing it. It is never
// modified after training, so encoding is safe under concurrent use.
type Schema struct {
	dims  []Dimension
	vocab map[string][]string
}

// buildSchema fits the categorical vocabulary from the training records and
// lays out the dimension order. Levels are sorted so the layout does not
// depend on record order.
func buildSchema(records []domain.CustomerRecord) *Schema {
	vocab := make(map[string][]string, len(categoricalFeatures))
	for _, feature := range categoricalFeatures {
		seen := make(map[string]bool)
		var levels []string
		for _, r := range records {
			value := categoricalValue(&r, feature)
			if !seen[value] {
				seen[value] = true
				levels = append(levels, value)
			}
		}
		sort.Strings(levels)
		vocab[feature] = levels
	}

	var dims []Dimension
	for _, feature := range categoricalFeatures {
		for _, level := range vocab[feature] {
			dims = append(dims, Dimension{Kind: KindCategorical, Feature: feature, Level: level})
		}
	}
	for _, feature := range numericFeatures {
		dims = append(dims, Dimension{Kind: KindNumeric, Feature: feature})
	}

	return &Schema{dims: dims, vocab: vocab}
}

// Dimensions returns the ordered dimension identities of the encoded vector
func (s *Schema) Dimensions() []Dimension {
	return s.dims
}

// Levels returns the trained vocabulary for a categorical feature
func (s *Schema) Levels(feature string) []string {
	return s.vocab[feature]
}

// Encode maps a record to its fixed-width numeric vector. A categorical value
// outside the trained vocabulary leaves its entire one-hot block at zero;
// the vector length is the same for every record.
func (s *Schema) Encode(r *domain.CustomerRecord) []float64 {
	vec := make([]float64, len(s.dims))
	for i, d := range s.dims {
		switch d.Kind {
		case KindCategorical:
			if categoricalValue(r, d.Feature) == d.Level {
				vec[i] = 1
			}
		case KindNumeric:
			vec[i] = numericValue(r, d.Feature)
		}
	}
	return vec
}

func categoricalValue(r *domain.CustomerRecord, feature string) string {
	switch feature {
	case "contract":
		return r.Contract
	case "internet":
		return r.Internet
	}
	return ""
}

func numericValue(r *domain.CustomerRecord, feature string) float64 {
	switch feature {
	case "tenure_months":
		return float64(r.TenureMonths)
	case "monthly_charges":
		return r.MonthlyCharges
	case "support_tickets":
		return float64(r.SupportTickets)
	}
	return 0
}
