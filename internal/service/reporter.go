package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/noted-input/noted-analyze/internal/model"
)

type Reporter struct{}

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Print(w io.Writer, stats *model.ClickStatistics) error {
	_, err := io.WriteString(w, FormatStatistics(stats))
	return errors.Wrap(err, "failed to write statistics")
}

func (r *Reporter) PrintDistributions(w io.Writer, deadzone, counter *model.DeltaDistribution) error {
	var sb strings.Builder
	writeDistribution(&sb, "Deadzone Distribution", deadzone)
	writeDistribution(&sb, "Counterstrafe Distribution", counter)
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "failed to write distributions")
}

func (r *Reporter) PrintHolds(w io.Writer, holds []model.KeyHoldSummary) error {
	var sb strings.Builder
	sb.WriteString("\n--- Key Holds ---\n")
	if len(holds) == 0 {
		sb.WriteString("No completed key holds\n")
	}
	for _, h := range holds {
		fmt.Fprintf(&sb, "%s: %d holds, avg %.1f ms, longest %.1f ms\n", h.Key, h.Holds, h.AvgHoldMs, h.MaxHoldMs)
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "failed to write key holds")
}

// PrintClicks lists every click with its deltas, timed from the first event.
func (r *Reporter) PrintClicks(w io.Writer, events []*model.Event) error {
	var sb strings.Builder
	sb.WriteString("\n--- Clicks ---\n")
	if len(events) > 0 {
		start := events[0].TimestampMs
		for _, e := range events {
			if !e.IsClick() {
				continue
			}
			fmt.Fprintf(&sb, "%.1f ms: deadzone %s, counterstrafe %s\n", e.TimestampMs-start, FormatDelta(e.DeadzoneDeltaMs), FormatDelta(e.CounterDeltaMs))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "failed to write clicks")
}

func (r *Reporter) PrintJSON(w io.Writer, report *model.SessionReport) error {
	if report.Holds == nil {
		report.Holds = []model.KeyHoldSummary{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "failed to write report")
}

// percentOf guards the zero-click case by flooring the denominator at one.
func percentOf(n, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(100*n) / float64(total)
}

// FormatStatistics renders the session report exactly as printed to the console.
func FormatStatistics(stats *model.ClickStatistics) string {
	var sb strings.Builder

	sb.WriteString("\n=== NoteD Session Statistics ===\n\n")
	fmt.Fprintf(&sb, "Total Clicks: %d\n", stats.TotalClicks)
	fmt.Fprintf(&sb, "Clicks with Deadzone Data: %d (%.1f%%)\n", stats.ClicksWithDeadzone, percentOf(stats.ClicksWithDeadzone, stats.TotalClicks))
	fmt.Fprintf(&sb, "Clicks with Counterstrafe Data: %d (%.1f%%)\n", stats.ClicksWithCounterstrafe, percentOf(stats.ClicksWithCounterstrafe, stats.TotalClicks))

	if stats.ClicksWithDeadzone > 0 {
		writeTiming(&sb, "Deadzone Timing", stats.AvgDeadzoneMs, stats.MinDeadzoneMs, stats.MaxDeadzoneMs)
	}
	if stats.ClicksWithCounterstrafe > 0 {
		writeTiming(&sb, "Counterstrafe Timing", stats.AvgCounterstrafeMs, stats.MinCounterstrafeMs, stats.MaxCounterstrafeMs)
	}

	return sb.String()
}

func writeTiming(sb *strings.Builder, title string, avg, min, max float64) {
	fmt.Fprintf(sb, "\n--- %s ---\n", title)
	fmt.Fprintf(sb, "Average: %.1f ms\n", avg)
	fmt.Fprintf(sb, "Min: %.1f ms\n", min)
	fmt.Fprintf(sb, "Max: %.1f ms\n", max)
}

func writeDistribution(sb *strings.Builder, title string, d *model.DeltaDistribution) {
	fmt.Fprintf(sb, "\n--- %s ---\n", title)
	fmt.Fprintf(sb, "Samples: %d\n", d.N)
	if d.N == 0 {
		return
	}
	fmt.Fprintf(sb, "p50: %.1f ms\n", d.P50)
	fmt.Fprintf(sb, "p90: %.1f ms\n", d.P90)
	fmt.Fprintf(sb, "p99: %.1f ms\n", d.P99)
}
