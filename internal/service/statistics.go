package service

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/util"
)

type Statistics struct{}

func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) Reduce(events []*model.Event) *model.ClickStatistics {
	stats := ReduceClicks(events)

	log.Debug().
		Str("module", "statistics").
		Int("events", len(events)).
		Int("clicks", stats.TotalClicks).
		Int("clicksWithDeadzone", stats.ClicksWithDeadzone).
		Int("clicksWithCounterstrafe", stats.ClicksWithCounterstrafe).
		Msg("reduced session")

	return stats
}

// deltaSeries folds one optional delta column. min starts unset (+Inf) and max
// starts at zero.
type deltaSeries struct {
	n   int
	sum float64
	min float64
	max float64
}

func newDeltaSeries() deltaSeries {
	return deltaSeries{min: math.Inf(1)}
}

func (s *deltaSeries) add(v float64) {
	s.n++
	s.sum += v
	s.min = util.Min(s.min, v)
	s.max = util.Max(s.max, v)
}

func (s *deltaSeries) finalize() (n int, avg, min, max float64) {
	if s.n > 0 {
		avg = s.sum / float64(s.n)
	}
	min = s.min
	if math.IsInf(min, 1) {
		min = 0
	}
	return s.n, avg, min, s.max
}

// ReduceClicks summarizes every mouse press of events in a single pass. It is a
// pure function of its input.
func ReduceClicks(events []*model.Event) *model.ClickStatistics {
	var stats model.ClickStatistics
	deadzone := newDeltaSeries()
	counter := newDeltaSeries()

	for _, e := range events {
		if !e.IsClick() {
			continue
		}
		stats.TotalClicks++

		if e.DeadzoneDeltaMs.Valid {
			deadzone.add(e.DeadzoneDeltaMs.Float64)
		}
		if e.CounterDeltaMs.Valid {
			counter.add(e.CounterDeltaMs.Float64)
		}
	}

	stats.ClicksWithDeadzone, stats.AvgDeadzoneMs, stats.MinDeadzoneMs, stats.MaxDeadzoneMs = deadzone.finalize()
	stats.ClicksWithCounterstrafe, stats.AvgCounterstrafeMs, stats.MinCounterstrafeMs, stats.MaxCounterstrafeMs = counter.finalize()

	return &stats
}
