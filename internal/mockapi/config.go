package mockapi

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the mock server settings, loaded from environment variables.
type Config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	BaseURL   string `env:"BASE_URL" envDefault:"http://127.0.0.1:8080"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Latency is added to every request to mimic a real network.
	Latency time.Duration `env:"LATENCY" envDefault:"0"`

	DemoEmail    string `env:"DEMO_EMAIL" envDefault:"demo@example.com"`
	DemoPassword string `env:"DEMO_PASSWORD" envDefault:"demo123"`
	DemoName     string `env:"DEMO_NAME" envDefault:"Utilisateur Demo"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
