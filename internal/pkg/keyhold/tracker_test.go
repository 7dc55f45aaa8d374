package keyhold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noted-input/noted-analyze/internal/model"
)

func key(ms float64, k, typ string) *model.Event {
	return &model.Event{TimestampMs: ms, Device: model.DeviceKeyboard, Key: k, EventType: typ}
}

func TestSpansPairsDownAndUp(t *testing.T) {
	spans := Spans([]*model.Event{
		key(0, "A", model.EventTypeDown),
		key(150, "A", model.EventTypeUp),
	})

	assert.Equal(t, []Span{{Key: "A", Start: 0, End: 150}}, spans)
	assert.Equal(t, 150.0, spans[0].Duration())
}

func TestSpansMissingUp(t *testing.T) {
	spans := Spans([]*model.Event{key(0, "A", model.EventTypeDown)})
	assert.Empty(t, spans)
}

func TestSpansUnmatchedUpIgnored(t *testing.T) {
	spans := Spans([]*model.Event{key(10, "D", model.EventTypeUp)})
	assert.Empty(t, spans)
}

func TestSpansRepeatedDownReopens(t *testing.T) {
	spans := Spans([]*model.Event{
		key(0, "A", model.EventTypeDown),
		key(50, "A", model.EventTypeDown),
		key(80, "A", model.EventTypeUp),
		key(90, "A", model.EventTypeUp),
	})

	assert.Equal(t, []Span{{Key: "A", Start: 50, End: 80}}, spans, "the first interval is dropped and the second up is ignored")
}

func TestSpansInterleavedKeys(t *testing.T) {
	spans := Spans([]*model.Event{
		key(0, "A", model.EventTypeDown),
		key(20, "D", model.EventTypeDown),
		key(30, "A", model.EventTypeUp),
		key(60, "D", model.EventTypeUp),
	})

	assert.Equal(t, []Span{
		{Key: "A", Start: 0, End: 30},
		{Key: "D", Start: 20, End: 60},
	}, spans)
}

func TestTrackerFiltersKeysAndDevices(t *testing.T) {
	tr := NewTracker("A", "D")
	assert.True(t, tr.Tracks("A"))
	assert.False(t, tr.Tracks("W"))

	_, ok := tr.Observe(key(0, "W", model.EventTypeDown), 0)
	assert.False(t, ok)
	assert.False(t, tr.held("W"))

	mouse := &model.Event{TimestampMs: 5, Device: model.DeviceMouse, Key: "A", EventType: model.EventTypeDown}
	tr.Observe(mouse, 5)
	assert.False(t, tr.held("A"), "mouse events never open a key")

	tr.Observe(key(10, "A", model.EventTypeDown), 10)
	assert.True(t, tr.held("A"))
	span, ok := tr.Observe(key(40, "A", model.EventTypeUp), 40)
	assert.True(t, ok)
	assert.Equal(t, Span{Key: "A", Start: 10, End: 40}, span)
	assert.False(t, tr.held("A"))
}
