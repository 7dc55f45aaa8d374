package service

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/influxdata/tdigest"
	"github.com/samber/lo"

	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/keyhold"
)

const digestCompression = 100

type Distribution struct{}

func NewDistribution() *Distribution {
	return &Distribution{}
}

// Deltas returns the quantiles of the deadzone and counterstrafe deltas carried by clicks.
func (d *Distribution) Deltas(events []*model.Event) (deadzone, counter *model.DeltaDistribution) {
	clicks := lo.Filter(events, func(e *model.Event, _ int) bool { return e.IsClick() })

	deadzone = Quantiles(lo.FilterMap(clicks, func(e *model.Event, _ int) (float64, bool) {
		return e.DeadzoneDeltaMs.Float64, e.DeadzoneDeltaMs.Valid
	}))
	counter = Quantiles(lo.FilterMap(clicks, func(e *model.Event, _ int) (float64, bool) {
		return e.CounterDeltaMs.Float64, e.CounterDeltaMs.Valid
	}))
	return deadzone, counter
}

// Quantiles estimates p50/p90/p99 of values with a t-digest.
func Quantiles(values []float64) *model.DeltaDistribution {
	result := &model.DeltaDistribution{N: len(values)}
	if len(values) == 0 {
		return result
	}

	td := tdigest.NewWithCompression(digestCompression)
	for _, v := range values {
		td.Add(v, 1)
	}
	result.P50 = td.Quantile(0.5)
	result.P90 = td.Quantile(0.9)
	result.P99 = td.Quantile(0.99)
	return result
}

// Holds summarizes the completed hold intervals of every keyboard key, sorted by key.
func (d *Distribution) Holds(events []*model.Event) []model.KeyHoldSummary {
	spans := keyhold.Spans(events)

	var groups []linq.Group
	linq.From(spans).
		GroupByT(
			func(s keyhold.Span) string { return s.Key },
			func(s keyhold.Span) float64 { return s.Duration() },
		).
		ToSlice(&groups)

	summaries := make([]model.KeyHoldSummary, 0, len(groups))
	for _, g := range groups {
		durations := linq.From(g.Group)
		summaries = append(summaries, model.KeyHoldSummary{
			Key:       g.Key.(string),
			Holds:     len(g.Group),
			AvgHoldMs: durations.Average(),
			MaxHoldMs: durations.Max().(float64),
		})
	}

	var sorted []model.KeyHoldSummary
	linq.From(summaries).
		OrderByT(func(s model.KeyHoldSummary) string { return s.Key }).
		ToSlice(&sorted)
	return sorted
}
