// Package chat defines the core conversation types shared across the
// chatbot subsystems: a single recorded exchange and the chat request and
// response shapes the engine operates on.
package chat

import "time"

// TimestampFormat is the wire format for CreatedAt fields. Timestamps are
// carried as strings in this layout rather than RFC 3339.
const TimestampFormat = "2006-01-02 15:04:05"

// Defaults applied by the engine when the corresponding request field is empty.
const (
	DefaultDisplayName = "User"
	DefaultSessionID   = "default"
)

// Exchange is one recorded user-message/bot-reply turn. Exchanges are
// immutable once created and owned by the session history that stored them.
type Exchange struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	Reply       string `json:"reply"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// Request is an inbound chat message. DisplayName and SessionID are
// optional; the engine substitutes DefaultDisplayName and DefaultSessionID.
type Request struct {
	Message     string `json:"message"`
	DisplayName string `json:"display_name,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

// Response echoes the request alongside the bot's reply and the timestamp
// of the recorded exchange.
type Response struct {
	Reply       string `json:"reply"`
	Message     string `json:"message"`
	DisplayName string `json:"display_name"`
	SessionID   string `json:"session_id"`
	CreatedAt   string `json:"created_at"`
}

// FormatTimestamp renders t in TimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}
