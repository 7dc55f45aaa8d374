// Package timeline lays out a session as key-hold bars and click markers on a
// shared time axis, and rasterizes that layout to PNG.
package timeline

import (
	"fmt"
	"image/color"

	"github.com/samber/lo"

	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/keyhold"
)

// Vertical positions on the [0, 1] axis.
const (
	ClickLane = 0.45
	LabelLane = 0.5

	laneHalfHeight = 0.1
)

// Track is a key drawn as hold bars in its own lane.
type Track struct {
	Key   string
	Lane  float64
	Color color.NRGBA
}

var Tracks = []Track{
	{Key: "A", Lane: 0.6, Color: color.NRGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xff}},
	{Key: "D", Lane: 0.3, Color: color.NRGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}},
}

// Rect is a closed key hold, in seconds from the first event.
type Rect struct {
	Key   string
	Lane  float64
	Start float64
	End   float64
}

func (r Rect) Bottom() float64 { return r.Lane - laneHalfHeight }
func (r Rect) Top() float64    { return r.Lane + laneHalfHeight }

// Click is a mouse press, in seconds from the first event. Label is the
// deadzone delta when the click carries one.
type Click struct {
	At       float64
	Label    string
	HasLabel bool
}

type Plan struct {
	// Duration is the axis extent: last minus first timestamp, in seconds.
	Duration float64
	Rects    []Rect
	Clicks   []Click
}

func trackFor(key string) (Track, bool) {
	return lo.Find(Tracks, func(t Track) bool { return t.Key == key })
}

// Layout computes everything the timeline shows from events in timestamp order.
// Keys outside Tracks and unmatched key releases leave no mark.
func Layout(events []*model.Event) *Plan {
	plan := &Plan{
		Rects:  []Rect{},
		Clicks: []Click{},
	}
	if len(events) == 0 {
		return plan
	}

	startMs := events[0].TimestampMs
	plan.Duration = (events[len(events)-1].TimestampMs - startMs) / 1000

	holds := keyhold.NewTracker(lo.Map(Tracks, func(t Track, _ int) string { return t.Key })...)

	for _, e := range events {
		t := (e.TimestampMs - startMs) / 1000

		switch {
		case e.Device == model.DeviceKeyboard:
			span, ok := holds.Observe(e, t)
			if !ok {
				continue
			}
			track, _ := trackFor(span.Key)
			plan.Rects = append(plan.Rects, Rect{
				Key:   span.Key,
				Lane:  track.Lane,
				Start: span.Start,
				End:   span.End,
			})
		case e.IsClick():
			click := Click{At: t}
			if e.DeadzoneDeltaMs.Valid {
				click.Label = fmt.Sprintf("%.1f", e.DeadzoneDeltaMs.Float64)
				click.HasLabel = true
			}
			plan.Clicks = append(plan.Clicks, click)
		}
	}

	return plan
}
