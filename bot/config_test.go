package bot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/chatbot/bot"
	"github.com/tailored-agentic-units/chatbot/history"
	"github.com/tailored-agentic-units/chatbot/rules"
)

func TestDefaultConfig(t *testing.T) {
	cfg := bot.DefaultConfig()

	if cfg.Rules.Set != rules.DefaultSetName {
		t.Errorf("got Rules.Set %q, want %q", cfg.Rules.Set, rules.DefaultSetName)
	}
	if cfg.History.Backend != history.BackendMemory {
		t.Errorf("got History.Backend %q, want %q", cfg.History.Backend, history.BackendMemory)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := bot.DefaultConfig()

	source := &bot.Config{
		History: history.Config{Backend: history.BackendRedis},
	}
	cfg.Merge(source)

	if cfg.History.Backend != history.BackendRedis {
		t.Errorf("got History.Backend %q, want %q", cfg.History.Backend, history.BackendRedis)
	}
	if cfg.Rules.Set != rules.DefaultSetName {
		t.Errorf("got Rules.Set %q, want %q (preserved default)", cfg.Rules.Set, rules.DefaultSetName)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")

	content := `{
		"rules": {
			"rules": [
				{"triggers": ["ping"], "reply": "pong"},
				{"reply": "fallback"}
			]
		},
		"history": {
			"backend": "memory"
		}
	}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := bot.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Rules.Rules) != 2 {
		t.Fatalf("got %d inline rules, want 2", len(cfg.Rules.Rules))
	}
	if cfg.Rules.Rules[0].Reply != "pong" {
		t.Errorf("got first rule reply %q, want %q", cfg.Rules.Rules[0].Reply, "pong")
	}
	if cfg.History.Backend != history.BackendMemory {
		t.Errorf("got History.Backend %q, want %q", cfg.History.Backend, history.BackendMemory)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := bot.LoadConfig("/nonexistent/config.json")
	if err == nil {
		t.Fatal("LoadConfig should fail for a missing file")
	}
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	t.Setenv("CHATBOT_HISTORY_BACKEND", "redis")
	t.Setenv("CHATBOT_REDIS_ADDR", "redis.test:6379")

	cfg, err := bot.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.History.Backend != history.BackendRedis {
		t.Errorf("got History.Backend %q, want %q (env overlay)", cfg.History.Backend, history.BackendRedis)
	}
	if cfg.History.Redis.Addr != "redis.test:6379" {
		t.Errorf("got Redis.Addr %q, want %q (env overlay)", cfg.History.Redis.Addr, "redis.test:6379")
	}
}
