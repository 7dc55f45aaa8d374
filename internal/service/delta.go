package service

import (
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/model"
)

var oppositeKeys = map[string]string{
	"A":     "D",
	"D":     "A",
	"W":     "S",
	"S":     "W",
	"Left":  "Right",
	"Right": "Left",
	"Up":    "Down",
	"Down":  "Up",
}

// DeltaResult is what DeltaCalculator derives for one click.
type DeltaResult struct {
	DeadzoneDeltaMs      null.Float
	CounterstrafeDeltaMs null.Float
	LastKeyUp            null.String
	OppositeKeyDown      null.String
}

// DeltaCalculator rebuilds deadzone and counterstrafe deltas from the keyboard
// events that precede a click within a lookback window.
type DeltaCalculator struct {
	WindowMs      float64
	MonitoredKeys []string
}

func NewDeltaCalculator(conf *appconfig.Config) *DeltaCalculator {
	return &DeltaCalculator{
		WindowMs:      conf.DeltaLookupWindow,
		MonitoredKeys: conf.MonitoredKeys,
	}
}

// FormatDelta renders a delta the way the live overlay shows it.
func FormatDelta(delta null.Float) string {
	if !delta.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1f ms", delta.Float64)
}

// Compute derives the deltas of click from history, the events logged before it
// in timestamp order. Only mouse presses have deltas.
func (c *DeltaCalculator) Compute(history []*model.Event, click *model.Event) DeltaResult {
	var result DeltaResult
	if !click.IsClick() {
		return result
	}

	if up, ok := c.lastKeyUp(history, click.TimestampMs); ok {
		result.DeadzoneDeltaMs = null.FloatFrom(click.TimestampMs - up.TimestampMs)
		result.LastKeyUp = null.StringFrom(up.Key)
	}
	if down, ok := c.lastCounterstrafe(history, click.TimestampMs); ok {
		result.CounterstrafeDeltaMs = null.FloatFrom(click.TimestampMs - down.TimestampMs)
		result.OppositeKeyDown = null.StringFrom(down.Key)
	}
	return result
}

// window returns the indexes of history that fall in [clickMs-WindowMs, clickMs),
// newest first.
func (c *DeltaCalculator) window(history []*model.Event, clickMs float64) []int {
	minMs := clickMs - c.WindowMs
	idx := make([]int, 0, 16)
	for i := len(history) - 1; i >= 0; i-- {
		ts := history[i].TimestampMs
		if ts >= clickMs {
			continue
		}
		if ts < minMs {
			break
		}
		idx = append(idx, i)
	}
	return idx
}

func (c *DeltaCalculator) lastKeyUp(history []*model.Event, clickMs float64) (*model.Event, bool) {
	for _, i := range c.window(history, clickMs) {
		e := history[i]
		if e.IsKeyUp() && (len(c.MonitoredKeys) == 0 || lo.Contains(c.MonitoredKeys, e.Key)) {
			return e, true
		}
	}
	return nil, false
}

// lastCounterstrafe finds the newest key press whose opposite key was pressed
// earlier in the window, i.e. the press that reversed the movement direction.
func (c *DeltaCalculator) lastCounterstrafe(history []*model.Event, clickMs float64) (*model.Event, bool) {
	idx := c.window(history, clickMs)
	for n, i := range idx {
		e := history[i]
		if !e.IsKeyDown() {
			continue
		}
		opposite, ok := oppositeKeys[e.Key]
		if !ok {
			continue
		}
		for _, j := range idx[n+1:] {
			if earlier := history[j]; earlier.IsKeyDown() && earlier.Key == opposite {
				return e, true
			}
		}
	}
	return nil, false
}

// Recompute returns copies of events where every click carries freshly derived
// deltas. Other events are copied unchanged.
func (c *DeltaCalculator) Recompute(events []*model.Event) []*model.Event {
	out := make([]*model.Event, len(events))
	for i, e := range events {
		cp := *e
		if e.IsClick() {
			result := c.Compute(events[:i], e)
			cp.DeadzoneDeltaMs = result.DeadzoneDeltaMs
			cp.CounterDeltaMs = result.CounterstrafeDeltaMs
		}
		out[i] = &cp
	}
	return out
}
