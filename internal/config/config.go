package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	BalldontlieKey string
	SportsDBKey    string
	OpenAIKey      string
	ServerPort     string
	LogLevel       string
}

// Load reads .env then the environment. A missing provider key is not fatal:
// each feature degrades to an explicit upstream error at call time instead of
// crashing the process.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		BalldontlieKey: getEnv("BALLDONTLIE_KEY", ""),
		SportsDBKey:    getEnv("THE_SPORTS_DB_KEY", "123"),
		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.BalldontlieKey == "" {
		logger.Warn().Msg("BALLDONTLIE_KEY not set, NBA/NFL/MLB lookups will fail")
	}
	if cfg.OpenAIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set, predictions and soccer estimates will fail")
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
