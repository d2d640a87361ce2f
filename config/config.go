package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	BackendNative = "native"
	BackendGoCV   = "gocv"
)

type Config struct {
	TelegramToken string
	InputDir      string
	OutputDir     string
	Workers       int
	Backend       string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		InputDir:      os.Getenv("SCRIBBLE_INPUT_DIR"),
		OutputDir:     os.Getenv("SCRIBBLE_OUTPUT_DIR"),
		Workers:       1,
		Backend:       BackendNative,
	}

	if v := os.Getenv("SCRIBBLE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SCRIBBLE_WORKERS %q: must be a positive integer", v)
		}
		cfg.Workers = n
	}

	if v := os.Getenv("SCRIBBLE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if err := cfg.validateBackend(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет параметры пакетной обработки
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return c.validateBackend()
}

func (c *Config) validateBackend() error {
	switch c.Backend {
	case BackendNative, BackendGoCV:
		return nil
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
}
