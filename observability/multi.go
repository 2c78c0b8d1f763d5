package observability

import "context"

// MultiObserver forwards each event to every sink, in registration order.
type MultiObserver struct {
	sinks []Observer
}

// NewMultiObserver creates a MultiObserver over the given sinks.
// Nil sinks are skipped.
func NewMultiObserver(sinks ...Observer) *MultiObserver {
	m := &MultiObserver{sinks: make([]Observer, 0, len(sinks))}
	for _, sink := range sinks {
		if sink != nil {
			m.sinks = append(m.sinks, sink)
		}
	}
	return m
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, sink := range m.sinks {
		sink.OnEvent(ctx, event)
	}
}
