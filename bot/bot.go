// Package bot implements the chat engine that composes the rule matcher and
// the session history store into the request cycle: normalize, match,
// record, respond.
//
// The engine initializes from configuration via New, creating subsystems
// internally. Functional options allow test overrides of any subsystem.
//
//	e, err := bot.New(&cfg)
//	resp, err := e.Chat(ctx, chat.Request{Message: "Hello!"})
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/chatbot/core/chat"
	"github.com/tailored-agentic-units/chatbot/history"
	"github.com/tailored-agentic-units/chatbot/observability"
	"github.com/tailored-agentic-units/chatbot/rules"
)

// Option configures an Engine after config-driven initialization.
// Applied by New after cold start, overriding config-created defaults.
type Option func(*Engine)

// WithMatcher overrides the config-created rule matcher.
func WithMatcher(m *rules.Matcher) Option {
	return func(e *Engine) { e.matcher = m }
}

// WithStore overrides the config-created history store.
func WithStore(s history.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithNow overrides the clock used for exchange timestamps.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine is the chat runtime: a stateless matcher in front of a shared
// session history store.
type Engine struct {
	matcher  *rules.Matcher
	store    history.Store
	observer observability.Observer
	now      func() time.Time
}

// New creates an Engine from configuration. The matcher and history store
// are initialized from their respective config sections. Functional options
// applied after initialization can override any subsystem for testing.
func New(cfg *Config, opts ...Option) (*Engine, error) {
	matcher, err := rules.New(&cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create matcher: %w", err)
	}

	store, err := history.New(&cfg.History)
	if err != nil {
		return nil, fmt.Errorf("failed to create history store: %w", err)
	}

	e := &Engine{
		matcher:  matcher,
		store:    store,
		observer: observability.NewSlogObserver(slog.Default()),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Chat runs one request cycle: apply defaults, match a reply, record the
// exchange under the request's session, and echo the result. The matcher is
// total, so the only failure surface is the history backend.
func (e *Engine) Chat(ctx context.Context, req chat.Request) (chat.Response, error) {
	displayName := req.DisplayName
	if displayName == "" {
		displayName = chat.DefaultDisplayName
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = chat.DefaultSessionID
	}

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventChatRequest,
		Level:     slog.LevelDebug,
		Timestamp: e.now(),
		Source:    "bot.Chat",
		Data: map[string]any{
			"session_id":     sessionID,
			"display_name":   displayName,
			"message_length": len(req.Message),
		},
	})

	reply := e.matcher.Reply(req.Message)

	exchange := chat.Exchange{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Message:     req.Message,
		Reply:       reply,
		DisplayName: displayName,
		CreatedAt:   chat.FormatTimestamp(e.now()),
	}

	if err := e.store.Append(ctx, sessionID, exchange); err != nil {
		e.observer.OnEvent(ctx, observability.Event{
			Type:      EventError,
			Level:     slog.LevelError,
			Timestamp: e.now(),
			Source:    "bot.Chat",
			Data:      map[string]any{"session_id": sessionID, "error": err.Error()},
		})
		return chat.Response{}, fmt.Errorf("failed to record exchange: %w", err)
	}

	e.observer.OnEvent(ctx, observability.Event{
		Type:      EventChatReply,
		Level:     slog.LevelInfo,
		Timestamp: e.now(),
		Source:    "bot.Chat",
		Data: map[string]any{
			"session_id":   sessionID,
			"reply_length": len(reply),
		},
	})

	return chat.Response{
		Reply:       reply,
		Message:     req.Message,
		DisplayName: displayName,
		SessionID:   sessionID,
		CreatedAt:   exchange.CreatedAt,
	}, nil
}

// History returns the full ordered exchange sequence for a session.
// An unknown session yields history.ErrSessionNotFound unchanged so the
// transport can map it to its own not-found signal.
func (e *Engine) History(ctx context.Context, sessionID string) ([]chat.Exchange, error) {
	exchanges, err := e.store.Get(ctx, sessionID)
	if err != nil {
		e.observer.OnEvent(ctx, observability.Event{
			Type:      EventHistoryMiss,
			Level:     slog.LevelDebug,
			Timestamp: e.now(),
			Source:    "bot.History",
			Data:      map[string]any{"session_id": sessionID},
		})
		return nil, err
	}
	return exchanges, nil
}

// Sessions returns the identifiers of all sessions the store knows about.
func (e *Engine) Sessions(ctx context.Context) ([]string, error) {
	return e.store.Sessions(ctx)
}
