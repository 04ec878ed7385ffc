// README: Config loader with env defaults for HTTP, generation providers and CORS.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAnthropicKey is returned when the generation credential is absent.
var ErrMissingAnthropicKey = errors.New("ANTHROPIC_API_KEY environment variable is required")

type AIConfig struct {
	AnthropicKey string
	GeminiKey    string
	Timeout      time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	AI   AIConfig
	CORS struct {
		AllowedOrigins []string
	}
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = ":" + strconv.Itoa(envOrDefaultInt("PORT", 5001))
	cfg.AI.AnthropicKey = envOrDefault("ANTHROPIC_API_KEY", "")
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.AI.Timeout = envOrDefaultDuration("GENERATION_TIMEOUT", 60*time.Second)
	cfg.CORS.AllowedOrigins = envOrDefaultList("CORS_ALLOWED_ORIGINS", []string{"*"})

	if cfg.AI.AnthropicKey == "" {
		return Config{}, ErrMissingAnthropicKey
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
