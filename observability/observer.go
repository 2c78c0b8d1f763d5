// Package observability provides event-based observability for the chatbot
// subsystems. Components emit Events to an Observer instead of logging
// directly, so log output, metrics, or test capture are swappable sinks.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of event. Each subsystem defines its own
// constants using this type (e.g., "bot.chat.request", "server.request").
type EventType string

// Event is an observability event emitted by a subsystem. Type names the
// event, Source names the emitting code path, and Data carries structured
// attributes.
type Event struct {
	Type      EventType
	Level     slog.Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events from subsystems for logging, tracing, or metrics.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
