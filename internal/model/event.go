package model

import "gopkg.in/guregu/null.v3"

const (
	DeviceKeyboard = "keyboard"
	DeviceMouse    = "mouse"

	EventTypeDown = "down"
	EventTypeUp   = "up"
)

// Column names of a NoteD session log, in the order the logger writes them.
const (
	ColumnTimestampQPC    = "timestamp_qpc"
	ColumnTimestampMs     = "timestamp_ms"
	ColumnDevice          = "device"
	ColumnKey             = "key"
	ColumnEventType       = "event_type"
	ColumnDeadzoneDeltaMs = "deadzone_delta_ms"
	ColumnCounterDeltaMs  = "counter_delta_ms"
)

var Columns = []string{
	ColumnTimestampQPC,
	ColumnTimestampMs,
	ColumnDevice,
	ColumnKey,
	ColumnEventType,
	ColumnDeadzoneDeltaMs,
	ColumnCounterDeltaMs,
}

// Event is one row of a session log. Device and EventType are kept verbatim;
// only the values declared above carry meaning downstream.
type Event struct {
	TimestampQPC    int64      `json:"timestampQpc"`
	TimestampMs     float64    `json:"timestampMs"`
	Device          string     `json:"device"`
	Key             string     `json:"key"`
	EventType       string     `json:"eventType"`
	DeadzoneDeltaMs null.Float `json:"deadzoneDeltaMs"`
	CounterDeltaMs  null.Float `json:"counterDeltaMs"`
}

// IsClick reports whether e is a mouse button press.
func (e *Event) IsClick() bool {
	return e.Device == DeviceMouse && e.EventType == EventTypeDown
}

func (e *Event) IsKeyDown() bool {
	return e.Device == DeviceKeyboard && e.EventType == EventTypeDown
}

func (e *Event) IsKeyUp() bool {
	return e.Device == DeviceKeyboard && e.EventType == EventTypeUp
}
