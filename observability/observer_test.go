package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tailored-agentic-units/chatbot/observability"
)

func TestNoOpObserver(t *testing.T) {
	obs := observability.NoOpObserver{}
	// Must not panic and must accept any event shape.
	obs.OnEvent(context.Background(), observability.Event{
		Type:      "test.event",
		Level:     slog.LevelInfo,
		Timestamp: time.Now(),
		Source:    "test",
		Data:      map[string]any{"key": "value"},
	})
}

func TestSlogObserver_EmitsTypeAndData(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := observability.NewSlogObserver(logger)

	obs.OnEvent(context.Background(), observability.Event{
		Type:      "bot.chat.reply",
		Level:     slog.LevelInfo,
		Timestamp: time.Now(),
		Source:    "bot.Chat",
		Data:      map[string]any{"session_id": "s1"},
	})

	out := buf.String()
	if !strings.Contains(out, "bot.chat.reply") {
		t.Errorf("output %q should contain the event type", out)
	}
	if !strings.Contains(out, "session_id=s1") {
		t.Errorf("output %q should contain flattened data attributes", out)
	}
	if !strings.Contains(out, "source=bot.Chat") {
		t.Errorf("output %q should contain the source attribute", out)
	}
}

func TestSlogObserver_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	obs := observability.NewSlogObserver(logger)

	obs.OnEvent(context.Background(), observability.Event{
		Type:  "bot.debug.detail",
		Level: slog.LevelDebug,
	})

	if buf.Len() != 0 {
		t.Errorf("debug event should be filtered at info level, got %q", buf.String())
	}
}

type recordingObserver struct {
	events []observability.Event
}

func (r *recordingObserver) OnEvent(_ context.Context, event observability.Event) {
	r.events = append(r.events, event)
}

func TestMultiObserver_FansOut(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	multi := observability.NewMultiObserver(first, nil, second)

	multi.OnEvent(context.Background(), observability.Event{Type: "test.fanout"})

	if len(first.events) != 1 || len(second.events) != 1 {
		t.Errorf("got %d and %d events, want 1 each", len(first.events), len(second.events))
	}
}
