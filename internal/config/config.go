package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot's environment configuration.
type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,required"`
	UpdateTimeout int    `env:"UPDATE_TIMEOUT" envDefault:"60"`
	Debug         bool   `env:"BOT_DEBUG" envDefault:"false"`
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
