package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	APIBaseURL     string `envconfig:"FUTDASH_API_BASE_URL" default:"http://localhost:8080"`
	LogLevel       string `envconfig:"FUTDASH_LOG_LEVEL" default:"info"`
	CredentialFile string `envconfig:"FUTDASH_CREDENTIAL_FILE" default:""`
	HTTPTimeout    int    `envconfig:"FUTDASH_HTTP_TIMEOUT" default:"30"`
	TokenTTL       int    `envconfig:"FUTDASH_TOKEN_TTL" default:"30"`
}

// Load reads configuration from environment variables into a Config struct.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
