// Package keyhold pairs keyboard down/up events into hold intervals.
//
// Each key is either open (held since some instant) or closed. A down opens the
// key, overwriting any earlier open instant, so a repeated down drops the
// interval it replaces. An up closes an open key and yields a Span; an up on a
// closed key yields nothing.
package keyhold

import "github.com/noted-input/noted-analyze/internal/model"

type Span struct {
	Key   string
	Start float64
	End   float64
}

func (s Span) Duration() float64 {
	return s.End - s.Start
}

type Tracker struct {
	keys map[string]struct{}
	open map[string]float64
}

// NewTracker tracks only the given keys, or every key when none are given.
func NewTracker(keys ...string) *Tracker {
	t := &Tracker{
		open: make(map[string]float64),
	}
	if len(keys) > 0 {
		t.keys = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			t.keys[k] = struct{}{}
		}
	}
	return t
}

func (t *Tracker) Tracks(key string) bool {
	if t.keys == nil {
		return true
	}
	_, ok := t.keys[key]
	return ok
}

// Observe feeds one event occurring at the instant at (in any unit the caller
// keeps consistent) and returns the span it closes, if any.
func (t *Tracker) Observe(e *model.Event, at float64) (Span, bool) {
	if e.Device != model.DeviceKeyboard || !t.Tracks(e.Key) {
		return Span{}, false
	}

	switch e.EventType {
	case model.EventTypeDown:
		t.open[e.Key] = at
	case model.EventTypeUp:
		start, ok := t.open[e.Key]
		if !ok {
			return Span{}, false
		}
		delete(t.open, e.Key)
		return Span{Key: e.Key, Start: start, End: at}, true
	}
	return Span{}, false
}

// held reports whether key is currently open.
func (t *Tracker) held(key string) bool {
	_, ok := t.open[key]
	return ok
}

// Spans runs a fresh tracker over events, timing them by TimestampMs.
func Spans(events []*model.Event, keys ...string) []Span {
	t := NewTracker(keys...)
	spans := make([]Span, 0)
	for _, e := range events {
		if span, ok := t.Observe(e, e.TimestampMs); ok {
			spans = append(spans, span)
		}
	}
	return spans
}
