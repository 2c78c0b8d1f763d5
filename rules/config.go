package rules

// Config holds matcher initialization parameters. Either a named set from
// the registry or an inline rule list; inline rules take precedence.
type Config struct {
	Set   string `json:"set,omitempty" env:"CHATBOT_RULE_SET"` // Registered rule set name.
	Rules []Rule `json:"rules,omitempty"`                      // Inline rule list, overrides Set.
}

// DefaultConfig returns the default matcher configuration (the built-in
// rule set).
func DefaultConfig() Config {
	return Config{Set: DefaultSetName}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Set != "" {
		c.Set = source.Set
	}
	if len(source.Rules) > 0 {
		c.Rules = source.Rules
	}
}

// New creates a Matcher from configuration.
func New(cfg *Config) (*Matcher, error) {
	if len(cfg.Rules) > 0 {
		return NewMatcher(cfg.Rules)
	}
	name := cfg.Set
	if name == "" {
		name = DefaultSetName
	}
	return Get(name)
}
