package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/model"
)

func press(ms float64) *model.Event {
	return mouse(ms, model.EventTypeDown, null.Float{}, null.Float{})
}

func newCalculator(windowMs float64) *DeltaCalculator {
	return &DeltaCalculator{WindowMs: windowMs, MonitoredKeys: []string{"A", "D", "W", "S"}}
}

func TestComputeDeadzone(t *testing.T) {
	history := []*model.Event{
		keyboard(100, "A", model.EventTypeDown),
		keyboard(150, "A", model.EventTypeUp),
	}

	result := newCalculator(200).Compute(history, press(165))

	require.True(t, result.DeadzoneDeltaMs.Valid)
	assert.InDelta(t, 15.0, result.DeadzoneDeltaMs.Float64, 1e-9)
	assert.Equal(t, null.StringFrom("A"), result.LastKeyUp)
	assert.False(t, result.CounterstrafeDeltaMs.Valid)
}

func TestComputeCounterstrafe(t *testing.T) {
	history := []*model.Event{
		keyboard(100, "A", model.EventTypeDown),
		keyboard(120, "D", model.EventTypeDown),
	}

	result := newCalculator(200).Compute(history, press(140))

	require.True(t, result.CounterstrafeDeltaMs.Valid)
	assert.InDelta(t, 20.0, result.CounterstrafeDeltaMs.Float64, 1e-9)
	assert.Equal(t, null.StringFrom("D"), result.OppositeKeyDown)
	assert.False(t, result.DeadzoneDeltaMs.Valid)
}

func TestComputeBoth(t *testing.T) {
	history := []*model.Event{
		keyboard(100, "A", model.EventTypeDown),
		keyboard(130, "A", model.EventTypeUp),
		keyboard(135, "D", model.EventTypeDown),
	}

	result := newCalculator(200).Compute(history, press(150))

	assert.InDelta(t, 20.0, result.DeadzoneDeltaMs.Float64, 1e-9)
	assert.InDelta(t, 15.0, result.CounterstrafeDeltaMs.Float64, 1e-9)
}

func TestComputeNoRecentKeys(t *testing.T) {
	result := newCalculator(200).Compute(nil, press(1000))

	assert.False(t, result.DeadzoneDeltaMs.Valid)
	assert.False(t, result.CounterstrafeDeltaMs.Valid)
}

func TestComputeOutsideWindow(t *testing.T) {
	history := []*model.Event{
		keyboard(100, "A", model.EventTypeDown),
		keyboard(120, "A", model.EventTypeUp),
	}

	result := newCalculator(50).Compute(history, press(200))

	assert.False(t, result.DeadzoneDeltaMs.Valid)
}

func TestComputeIgnoresUnmonitoredRelease(t *testing.T) {
	history := []*model.Event{
		keyboard(100, "Space", model.EventTypeUp),
	}

	result := newCalculator(200).Compute(history, press(110))
	assert.False(t, result.DeadzoneDeltaMs.Valid)

	all := &DeltaCalculator{WindowMs: 200}
	result = all.Compute(history, press(110))
	assert.InDelta(t, 10.0, result.DeadzoneDeltaMs.Float64, 1e-9)
}

func TestComputeOnlyForPresses(t *testing.T) {
	calc := newCalculator(200)

	result := calc.Compute(nil, keyboard(100, "A", model.EventTypeDown))
	assert.Equal(t, DeltaResult{}, result)

	history := []*model.Event{keyboard(100, "A", model.EventTypeUp)}
	result = calc.Compute(history, mouse(150, model.EventTypeUp, null.Float{}, null.Float{}))
	assert.False(t, result.DeadzoneDeltaMs.Valid)
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "15.3 ms", FormatDelta(null.FloatFrom(15.34)))
	assert.Equal(t, "0.5 ms", FormatDelta(null.FloatFrom(0.49)))
	assert.Equal(t, "-", FormatDelta(null.Float{}))
}

func TestNewDeltaCalculator(t *testing.T) {
	conf := &appconfig.Config{}
	conf.DeltaLookupWindow = 300
	conf.MonitoredKeys = []string{"A", "D"}

	calc := NewDeltaCalculator(conf)
	assert.InDelta(t, 300.0, calc.WindowMs, 1e-9)
	assert.Equal(t, []string{"A", "D"}, calc.MonitoredKeys)
}

func TestRecompute(t *testing.T) {
	events := []*model.Event{
		keyboard(100, "A", model.EventTypeDown),
		keyboard(130, "A", model.EventTypeUp),
		keyboard(135, "D", model.EventTypeDown),
		mouse(150, model.EventTypeDown, null.FloatFrom(999), null.Float{}),
		mouse(170, model.EventTypeUp, null.Float{}, null.Float{}),
	}

	out := newCalculator(200).Recompute(events)

	require.Len(t, out, len(events))
	assert.InDelta(t, 20.0, out[3].DeadzoneDeltaMs.Float64, 1e-9)
	assert.InDelta(t, 15.0, out[3].CounterDeltaMs.Float64, 1e-9)
	assert.Equal(t, *events[4], *out[4])

	assert.Equal(t, null.FloatFrom(999), events[3].DeadzoneDeltaMs, "input is left untouched")
	assert.NotSame(t, events[0], out[0])
}
