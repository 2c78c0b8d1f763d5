// Package history stores per-session conversation history: an append-only,
// insertion-ordered sequence of exchanges keyed by a caller-supplied session
// identifier. Sessions are created lazily on first append and a session key
// never maps to an empty sequence.
package history

import (
	"context"

	"github.com/tailored-agentic-units/chatbot/core/chat"
)

// Store is the session history capability. Implementations must be safe for
// concurrent use.
type Store interface {
	// Append records an exchange at the end of the session's history,
	// creating the session if it does not exist yet.
	Append(ctx context.Context, sessionID string, exchange chat.Exchange) error
	// Get returns the session's full history in insertion order. A session
	// that was never appended to yields ErrSessionNotFound, never an empty
	// success: "no session" and "empty session" are distinct states.
	Get(ctx context.Context, sessionID string) ([]chat.Exchange, error)
	// Sessions returns the identifiers of all known sessions, sorted.
	Sessions(ctx context.Context) ([]string, error)
}
