package bot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"

	"github.com/tailored-agentic-units/chatbot/history"
	"github.com/tailored-agentic-units/chatbot/rules"
)

// Config holds initialization parameters for the engine's subsystems.
// Each section delegates to that subsystem's config-driven constructor.
type Config struct {
	Rules   rules.Config   `json:"rules"`
	History history.Config `json:"history"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Rules:   rules.DefaultConfig(),
		History: history.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Rules.Merge(&source.Rules)
	c.History.Merge(&source.History)
}

// LoadConfig builds a Config by layering, in order: defaults, the optional
// JSON config file, and CHATBOT_* environment variables.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var loaded Config
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		cfg.Merge(&loaded)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
