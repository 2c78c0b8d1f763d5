package history

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const defaultRedisKeyPrefix = "chatbot:session:"

// RedisConfig holds connection parameters for the Redis backend.
type RedisConfig struct {
	Addr      string `json:"addr,omitempty" env:"CHATBOT_REDIS_ADDR"`
	Password  string `json:"password,omitempty" env:"CHATBOT_REDIS_PASSWORD"`
	DB        int    `json:"db,omitempty" env:"CHATBOT_REDIS_DB"`
	KeyPrefix string `json:"key_prefix,omitempty" env:"CHATBOT_REDIS_KEY_PREFIX"`
}

// Config holds history store initialization parameters.
type Config struct {
	Backend string      `json:"backend,omitempty" env:"CHATBOT_HISTORY_BACKEND"`
	Redis   RedisConfig `json:"redis,omitempty"`
}

// DefaultConfig returns the default history configuration (in-memory).
func DefaultConfig() Config {
	return Config{
		Backend: BackendMemory,
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: defaultRedisKeyPrefix,
		},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Backend != "" {
		c.Backend = source.Backend
	}
	if source.Redis.Addr != "" {
		c.Redis.Addr = source.Redis.Addr
	}
	if source.Redis.Password != "" {
		c.Redis.Password = source.Redis.Password
	}
	if source.Redis.DB != 0 {
		c.Redis.DB = source.Redis.DB
	}
	if source.Redis.KeyPrefix != "" {
		c.Redis.KeyPrefix = source.Redis.KeyPrefix
	}
}

// New creates a Store from configuration.
func New(cfg *Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		prefix := cfg.Redis.KeyPrefix
		if prefix == "" {
			prefix = defaultRedisKeyPrefix
		}
		return NewRedisStore(client, prefix), nil
	default:
		return nil, fmt.Errorf("unknown history backend: %s", cfg.Backend)
	}
}
