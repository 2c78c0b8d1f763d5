// Package rules implements the rule-based reply matcher. A matcher holds an
// ordered list of (triggers, reply) rules evaluated first-match-wins against
// a normalized utterance, ending with an unconditional default rule so every
// input produces exactly one reply.
package rules

import (
	"fmt"
	"strings"
)

// Rule pairs a trigger set with the reply returned when it matches. A rule
// matches when any trigger occurs as a contiguous substring of the
// normalized utterance. An empty trigger set matches unconditionally.
//
// Matching is substring containment, not word-boundary aware: a short
// trigger can fire inside a longer unrelated word. That imprecision is part
// of the matcher's contract, not something callers should compensate for.
type Rule struct {
	Triggers []string `json:"triggers,omitempty"`
	Reply    string   `json:"reply"`
}

// Matches reports whether the rule fires for the given normalized utterance.
func (r Rule) Matches(normalized string) bool {
	if len(r.Triggers) == 0 {
		return true
	}
	for _, trigger := range r.Triggers {
		if strings.Contains(normalized, trigger) {
			return true
		}
	}
	return false
}

// Matcher evaluates an ordered rule list. Rule order is observable
// behavior: when several rules match the same utterance, the earliest one
// wins, so reordering rules is a breaking change.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a Matcher from an ordered rule list. The final rule
// must be unconditional (empty trigger set); every other rule must carry at
// least one trigger and a reply. Triggers are normalized the same way
// utterances are, so a config-supplied "Ping" matches "ping".
func NewMatcher(ruleList []Rule) (*Matcher, error) {
	if len(ruleList) == 0 {
		return nil, ErrNoRules
	}

	last := len(ruleList) - 1
	if len(ruleList[last].Triggers) != 0 {
		return nil, ErrNoDefault
	}

	rules := make([]Rule, len(ruleList))
	for i, r := range ruleList {
		if r.Reply == "" {
			return nil, fmt.Errorf("%w: rule %d", ErrEmptyReply, i)
		}
		if i != last && len(r.Triggers) == 0 {
			return nil, fmt.Errorf("%w: rule %d", ErrUnreachableRule, i)
		}

		normalized := Rule{Reply: r.Reply}
		if len(r.Triggers) > 0 {
			normalized.Triggers = make([]string, len(r.Triggers))
			for j, trigger := range r.Triggers {
				t := Normalize(trigger)
				if t == "" {
					// An empty trigger matches everything, silently
					// turning the rule unconditional.
					return nil, fmt.Errorf("%w: rule %d", ErrEmptyTrigger, i)
				}
				normalized.Triggers[j] = t
			}
		}
		rules[i] = normalized
	}

	return &Matcher{rules: rules}, nil
}

// Normalize lowercases the utterance and trims surrounding whitespace.
// All rule predicates operate on the normalized form only.
func Normalize(utterance string) string {
	return strings.TrimSpace(strings.ToLower(utterance))
}

// Reply returns the reply of the first rule matching the normalized
// utterance. Total: the trailing unconditional rule guarantees a reply for
// every input, including the empty string.
func (m *Matcher) Reply(utterance string) string {
	normalized := Normalize(utterance)
	for _, r := range m.rules {
		if r.Matches(normalized) {
			return r.Reply
		}
	}
	// Unreachable: NewMatcher guarantees a trailing unconditional rule.
	return m.rules[len(m.rules)-1].Reply
}

// Rules returns a defensive copy of the ordered rule list.
func (m *Matcher) Rules() []Rule {
	rules := make([]Rule, len(m.rules))
	copy(rules, m.rules)
	return rules
}

// DefaultRules returns the built-in rule set. The greeting reply and the
// trailing fallback reply are fixed contract values; the middle rules are
// the stock small-talk set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Triggers: []string{"hello", "hi", "hey", "greetings"},
			Reply:    "Hi there! How can I help you today?",
		},
		{
			Triggers: []string{"your name", "who are you"},
			Reply:    "I'm a rule-based assistant. Nice to meet you!",
		},
		{
			Triggers: []string{"how are you"},
			Reply:    "I'm doing great! Thanks for asking. How can I assist you?",
		},
		{
			Triggers: []string{"help"},
			Reply:    "I can chat with you! Try saying hello, ask my name, or ask how I'm doing.",
		},
		{
			Reply: "Interesting! I'm still learning. Can you try asking something else?",
		},
	}
}
