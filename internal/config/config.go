package config

import (
	"encoding/json"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Print methods recognized in PRINT_METHOD. Empty means printing is off.
const (
	PrintMethodPrintNode = "printnode"
	PrintMethodWebhook   = "webhook"
	PrintMethodEscpos    = "escpos"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	DBPath    string `env:"DB_PATH" envDefault:"phoneline.db"`
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:3000"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`

	PrintMethod     string `env:"PRINT_METHOD"`
	PrintNodeAPIKey string `env:"PRINTNODE_API_KEY"`

	// JSON objects mapping businessId to a printer id / webhook URL.
	RawPrinterIDs    string `env:"PRINTER_IDS"`
	RawPrintWebhooks string `env:"PRINT_WEBHOOKS"`

	PrinterIDs    map[string]string
	PrintWebhooks map[string]string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	var err error
	if cfg.PrinterIDs, err = decodeMap(cfg.RawPrinterIDs); err != nil {
		return nil, fmt.Errorf("parse PRINTER_IDS: %w", err)
	}
	if cfg.PrintWebhooks, err = decodeMap(cfg.RawPrintWebhooks); err != nil {
		return nil, fmt.Errorf("parse PRINT_WEBHOOKS: %w", err)
	}

	return cfg, nil
}

func decodeMap(raw string) (map[string]string, error) {
	m := map[string]string{}
	if raw == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}
