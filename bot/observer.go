package bot

import "github.com/tailored-agentic-units/chatbot/observability"

// Engine event types emitted during the chat cycle.
const (
	EventChatRequest observability.EventType = "bot.chat.request"
	EventChatReply   observability.EventType = "bot.chat.reply"
	EventHistoryMiss observability.EventType = "bot.history.miss"
	EventError       observability.EventType = "bot.error"
)
