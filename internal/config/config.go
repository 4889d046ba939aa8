package config

import (
	"os"

	"github.com/joho/godotenv"
)

// placeholderKey is the value shipped in .env.example; it counts as
// "not configured".
const placeholderKey = "your_api_key_here"

const defaultModel = "gpt-4o-mini"

type Config struct {
	APIKey string
	Model  string
	Debug  bool
}

// Load reads configuration from .env (if present) and the environment.
func Load() Config {
	godotenv.Load()

	model := os.Getenv("DM_MODEL")
	if model == "" {
		model = defaultModel
	}

	return Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  model,
		Debug:  os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true",
	}
}

// NarrationConfigured reports whether a usable API key is present.
func (c Config) NarrationConfigured() bool {
	return c.APIKey != "" && c.APIKey != placeholderKey
}
