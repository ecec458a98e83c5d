package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// ErrUnknownSegmentField signals a grouping field that is not a categorical
// feature of the dataset; callers surface it as a client-input failure.
var ErrUnknownSegmentField = errors.New("unknown segment field")

// SegmentMetric selects which mean is reported as a segment's churn rate.
// The source history shipped both semantics in parallel; here it is a single
// explicit configuration choice.
type SegmentMetric string

const (
	// MetricPredicted reports the mean predicted probability (the default:
	// forward-looking, defined even for unlabeled records).
	MetricPredicted SegmentMetric = "predicted"
	// MetricObserved reports the mean observed churn label.
	MetricObserved SegmentMetric = "observed"
)

// ParseSegmentMetric validates a configured metric name
func ParseSegmentMetric(s string) (SegmentMetric, error) {
	switch SegmentMetric(s) {
	case MetricPredicted, MetricObserved:
		return SegmentMetric(s), nil
	}
	return "", fmt.Errorf("invalid segment metric: %q (supported: predicted, observed)", s)
}

// Rate picks the configured mean out of a segment stat
func (m SegmentMetric) Rate(stat domain.SegmentStat) float64 {
	if m == MetricObserved {
		return stat.ObservedRate
	}
	return stat.PredictedRate
}

// AggregateBySegment groups the dataset by a categorical field and computes
// per-segment counts, the mean observed churn label, and the mean predicted
// probability. Every record lands in exactly one segment, so the counts sum
// to len(records). Segments are sorted by value for deterministic output.
func AggregateBySegment(m *Model, records []domain.CustomerRecord, field string) ([]domain.SegmentStat, error) {
	if !isCategoricalFeature(field) {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownSegmentField, field, categoricalFeatures)
	}

	type accumulator struct {
		count        int
		labeled      int
		observedSum  float64
		predictedSum float64
	}
	groups := make(map[string]*accumulator)

	for i := range records {
		r := &records[i]
		segment := categoricalValue(r, field)
		acc := groups[segment]
		if acc == nil {
			acc = &accumulator{}
			groups[segment] = acc
		}
		acc.count++
		acc.predictedSum += m.Probability(r)
		if r.Labeled {
			acc.labeled++
			if r.Churned {
				acc.observedSum++
			}
		}
	}

	stats := make([]domain.SegmentStat, 0, len(groups))
	for segment, acc := range groups {
		stat := domain.SegmentStat{
			Segment:       segment,
			Count:         acc.count,
			PredictedRate: acc.predictedSum / float64(acc.count),
		}
		if acc.labeled > 0 {
			stat.ObservedRate = acc.observedSum / float64(acc.labeled)
		}
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Segment < stats[j].Segment
	})
	return stats, nil
}

// SelectForExport returns the export rows for every record whose predicted
// probability meets the threshold, preserving dataset order. The threshold
// is caller-supplied and independent of the risk-label cut points.
func SelectForExport(m *Model, records []domain.CustomerRecord, minProbability float64) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0)
	for i := range records {
		r := &records[i]
		probability := m.Probability(r)
		if probability < minProbability {
			continue
		}
		rows = append(rows, domain.ExportRow{
			CustomerID:     r.CustomerID,
			Contract:       r.Contract,
			Internet:       r.Internet,
			MonthlyCharges: r.MonthlyCharges,
			SupportTickets: r.SupportTickets,
			Probability:    probability,
		})
	}
	return rows
}

func isCategoricalFeature(field string) bool {
	for _, f := range categoricalFeatures {
		if f == field {
			return true
		}
	}
	return false
}
