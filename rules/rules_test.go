package rules_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/chatbot/rules"
)

const fallbackReply = "Interesting! I'm still learning. Can you try asking something else?"

func defaultMatcher(t *testing.T) *rules.Matcher {
	t.Helper()
	m, err := rules.NewMatcher(rules.DefaultRules())
	if err != nil {
		t.Fatalf("NewMatcher(DefaultRules()) failed: %v", err)
	}
	return m
}

func TestNewMatcher_RejectsEmptyList(t *testing.T) {
	_, err := rules.NewMatcher(nil)
	if !errors.Is(err, rules.ErrNoRules) {
		t.Errorf("got err %v, want ErrNoRules", err)
	}
}

func TestNewMatcher_RequiresTrailingDefault(t *testing.T) {
	_, err := rules.NewMatcher([]rules.Rule{
		{Triggers: []string{"hello"}, Reply: "hi"},
	})
	if !errors.Is(err, rules.ErrNoDefault) {
		t.Errorf("got err %v, want ErrNoDefault", err)
	}
}

func TestNewMatcher_RejectsShadowingUnconditionalRule(t *testing.T) {
	_, err := rules.NewMatcher([]rules.Rule{
		{Reply: "always"},
		{Reply: "never reached"},
	})
	if !errors.Is(err, rules.ErrUnreachableRule) {
		t.Errorf("got err %v, want ErrUnreachableRule", err)
	}
}

func TestNewMatcher_RejectsEmptyReply(t *testing.T) {
	_, err := rules.NewMatcher([]rules.Rule{
		{Triggers: []string{"hello"}},
		{Reply: "fallback"},
	})
	if !errors.Is(err, rules.ErrEmptyReply) {
		t.Errorf("got err %v, want ErrEmptyReply", err)
	}
}

func TestNewMatcher_NormalizesTriggers(t *testing.T) {
	m, err := rules.NewMatcher([]rules.Rule{
		{Triggers: []string{"Ping", "  PONG  "}, Reply: "table tennis"},
		{Reply: "fallback"},
	})
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	if got := m.Reply("ping me later"); got != "table tennis" {
		t.Errorf("Reply = %q, want mixed-case trigger to fire on %q", got, "ping")
	}
	if got := m.Reply("pong!"); got != "table tennis" {
		t.Errorf("Reply = %q, want padded trigger to fire on %q", got, "pong")
	}
}

func TestNewMatcher_RejectsEmptyTrigger(t *testing.T) {
	_, err := rules.NewMatcher([]rules.Rule{
		{Triggers: []string{"hello", "   "}, Reply: "hi"},
		{Reply: "fallback"},
	})
	if !errors.Is(err, rules.ErrEmptyTrigger) {
		t.Errorf("got err %v, want ErrEmptyTrigger", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  HELLO  ", "hello"},
		{"Hello, World!", "hello, world!"},
		{"\they\n", "hey"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := rules.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatcher_Reply(t *testing.T) {
	m := defaultMatcher(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"greeting", "Hello!", "Hi there! How can I help you today?"},
		{"greeting variant", "hey you", "Hi there! How can I help you today?"},
		{"name question", "what is your name?", "I'm a rule-based assistant. Nice to meet you!"},
		{"unmatched input", "What is the weather today?", fallbackReply},
		{"empty input", "", fallbackReply},
		{"whitespace only", "   \t ", fallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Reply(tt.in); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatcher_Reply_CaseAndWhitespaceInvariant(t *testing.T) {
	m := defaultMatcher(t)

	if got, want := m.Reply("  HELLO  "), m.Reply("hello"); got != want {
		t.Errorf("Reply(\"  HELLO  \") = %q, Reply(\"hello\") = %q, want equal", got, want)
	}
}

func TestMatcher_Reply_Idempotent(t *testing.T) {
	m := defaultMatcher(t)

	first := m.Reply("tell me a joke")
	second := m.Reply("tell me a joke")
	if first != second {
		t.Errorf("same input produced different replies: %q then %q", first, second)
	}
}

func TestMatcher_Reply_FirstMatchWins(t *testing.T) {
	m, err := rules.NewMatcher([]rules.Rule{
		{Triggers: []string{"hello"}, Reply: "reply A"},
		{Triggers: []string{"your name"}, Reply: "reply B"},
		{Reply: "fallback"},
	})
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	// Matches both rule A and rule B; the earlier rule must win.
	if got := m.Reply("hello, what's your name?"); got != "reply A" {
		t.Errorf("Reply = %q, want %q", got, "reply A")
	}
}

func TestMatcher_Reply_SubstringInsideWord(t *testing.T) {
	m, err := rules.NewMatcher([]rules.Rule{
		{Triggers: []string{"hi"}, Reply: "greeting"},
		{Reply: "fallback"},
	})
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	// Containment is not word-boundary aware: "hi" fires inside "this".
	if got := m.Reply("this is fine"); got != "greeting" {
		t.Errorf("Reply = %q, want %q (substring match inside a word)", got, "greeting")
	}
}

func TestMatcher_Rules_DefensiveCopy(t *testing.T) {
	m := defaultMatcher(t)

	got := m.Rules()
	got[0] = rules.Rule{Reply: "mutated"}

	if m.Rules()[0].Reply == "mutated" {
		t.Error("internal rule list mutated via returned slice")
	}
}
